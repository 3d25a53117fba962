package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"chatorder/internal/domain/fulfillment"
	"chatorder/internal/domain/order"
	"chatorder/internal/pkg/clock"
	"chatorder/internal/pkg/config"
	"chatorder/internal/usecase/commands"

	"github.com/google/uuid"
)

// Client talks to a Square-compatible commerce platform. Wire shapes are
// owned here; everything above works with domain types.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fallback   Credentials
	clock      clock.Clock
}

func NewClient(cfg config.CommerceConfig, clk clock.Clock) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		fallback: Credentials{
			AccessToken: cfg.AccessToken,
			LocationID:  cfg.LocationID,
		},
		clock: clk,
	}
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("commerce: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

type moneyBody struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createCustomerRequest struct {
	IdempotencyKey string      `json:"idempotency_key"`
	GivenName      string      `json:"given_name"`
	FamilyName     string      `json:"family_name"`
	EmailAddress   string      `json:"email_address"`
	PhoneNumber    string      `json:"phone_number,omitempty"`
	Address        addressBody `json:"address"`
	Birthday       string      `json:"birthday,omitempty"`
}

type addressBody struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

type createCustomerResponse struct {
	Customer struct {
		ID string `json:"id"`
	} `json:"customer"`
}

func (c *Client) CreateCustomer(ctx context.Context, intake fulfillment.CustomerIntake) (string, error) {
	req := createCustomerRequest{
		IdempotencyKey: uuid.NewString(),
		GivenName:      intake.FirstName,
		FamilyName:     intake.LastName,
		EmailAddress:   intake.Email,
		PhoneNumber:    intake.PhoneNumber,
		Address: addressBody{
			AddressLine1: intake.AddressLine1,
			PostalCode:   intake.PostalCode,
			Country:      intake.Country,
		},
		Birthday: intake.Birthday,
	}
	var resp createCustomerResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v2/customers", req, &resp); err != nil {
		return "", err
	}
	if resp.Customer.ID == "" {
		return "", fmt.Errorf("commerce: create customer returned no id")
	}
	return resp.Customer.ID, nil
}

type createOrderRequest struct {
	IdempotencyKey string    `json:"idempotency_key"`
	Order          orderBody `json:"order"`
}

type orderBody struct {
	LocationID  string         `json:"location_id"`
	ReferenceID string         `json:"reference_id"`
	CustomerID  string         `json:"customer_id"`
	LineItems   []lineItemBody `json:"line_items"`
	Taxes       []taxBody      `json:"taxes"`
}

type lineItemBody struct {
	Name           string    `json:"name"`
	Quantity       string    `json:"quantity"`
	BasePriceMoney moneyBody `json:"base_price_money"`
}

type taxBody struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
	Scope      string `json:"scope"`
}

type createOrderResponse struct {
	Order struct {
		ID string `json:"id"`
	} `json:"order"`
}

func (c *Client) CreateOrder(ctx context.Context, summary order.Summary, customerID string) (string, error) {
	creds := c.credentials(ctx)
	req := createOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order: orderBody{
			LocationID:  creds.LocationID,
			ReferenceID: uuid.NewString(),
			CustomerID:  customerID,
			LineItems: []lineItemBody{{
				Name:     summary.DishName,
				Quantity: summary.Quantity,
				BasePriceMoney: moneyBody{
					Amount:   summary.Price.Amount(),
					Currency: summary.Price.Currency(),
				},
			}},
			Taxes: []taxBody{{
				UID:        "state-sales-tax",
				Name:       "State Sales Tax",
				Percentage: "10",
				Scope:      "ORDER",
			}},
		},
	}
	var resp createOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v2/orders", req, &resp); err != nil {
		return "", err
	}
	if resp.Order.ID == "" {
		return "", fmt.Errorf("commerce: create order returned no id")
	}
	return resp.Order.ID, nil
}

type createInvoiceRequest struct {
	IdempotencyKey string      `json:"idempotency_key"`
	Invoice        invoiceBody `json:"invoice"`
}

type invoiceBody struct {
	LocationID       string               `json:"location_id"`
	OrderID          string               `json:"order_id"`
	PrimaryRecipient recipientBody        `json:"primary_recipient"`
	PaymentRequests  []paymentRequestBody `json:"payment_requests"`
	DeliveryMethod   string               `json:"delivery_method"`
	InvoiceNumber    string               `json:"invoice_number"`
	Title            string               `json:"title"`
}

type recipientBody struct {
	CustomerID string `json:"customer_id"`
}

type paymentRequestBody struct {
	RequestType    string `json:"request_type"`
	DueDate        string `json:"due_date"`
	TippingEnabled bool   `json:"tipping_enabled"`
}

type createInvoiceResponse struct {
	Invoice struct {
		ID string `json:"id"`
	} `json:"invoice"`
}

func (c *Client) CreateInvoice(ctx context.Context, orderID, customerID string) (string, error) {
	creds := c.credentials(ctx)
	req := createInvoiceRequest{
		IdempotencyKey: uuid.NewString(),
		Invoice: invoiceBody{
			LocationID:       creds.LocationID,
			OrderID:          orderID,
			PrimaryRecipient: recipientBody{CustomerID: customerID},
			PaymentRequests: []paymentRequestBody{{
				RequestType:    "BALANCE",
				DueDate:        c.clock.Now().AddDate(0, 0, 1).Format("2006-01-02"),
				TippingEnabled: true,
			}},
			DeliveryMethod: "EMAIL",
			InvoiceNumber:  "inv-" + orderID,
			Title:          "Invoice for Order " + orderID,
		},
	}
	var resp createInvoiceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v2/invoices", req, &resp); err != nil {
		return "", err
	}
	if resp.Invoice.ID == "" {
		return "", fmt.Errorf("commerce: create invoice returned no id")
	}
	return resp.Invoice.ID, nil
}

type catalogObject struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	ItemData *struct {
		Name       string `json:"name"`
		Variations []struct {
			ItemVariationData *struct {
				PriceMoney *moneyBody `json:"price_money"`
			} `json:"item_variation_data"`
		} `json:"variations"`
	} `json:"item_data"`
}

type listCatalogResponse struct {
	Objects []catalogObject `json:"objects"`
}

func (c *Client) ListCatalog(ctx context.Context) ([]commands.CatalogItem, error) {
	var resp listCatalogResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v2/catalog/list?types=ITEM", nil, &resp); err != nil {
		return nil, err
	}
	items := make([]commands.CatalogItem, 0, len(resp.Objects))
	for _, obj := range resp.Objects {
		if obj.ItemData == nil {
			continue
		}
		item := commands.CatalogItem{ID: obj.ID, Name: obj.ItemData.Name}
		for _, v := range obj.ItemData.Variations {
			if v.ItemVariationData == nil || v.ItemVariationData.PriceMoney == nil {
				continue
			}
			if m, err := order.NewMoney(v.ItemVariationData.PriceMoney.Amount, v.ItemVariationData.PriceMoney.Currency); err == nil {
				item.Price = &m
				break
			}
		}
		items = append(items, item)
	}
	return items, nil
}

type upsertCatalogRequest struct {
	IdempotencyKey string        `json:"idempotency_key"`
	Object         upsertsObject `json:"object"`
}

type upsertsObject struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	ItemData upsertItemData `json:"item_data"`
}

type upsertItemData struct {
	Name         string            `json:"name"`
	Abbreviation string            `json:"abbreviation"`
	Variations   []upsertVariation `json:"variations"`
}

type upsertVariation struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	ItemVariationData struct {
		Name        string    `json:"name"`
		PricingType string    `json:"pricing_type"`
		PriceMoney  moneyBody `json:"price_money"`
	} `json:"item_variation_data"`
}

type upsertCatalogResponse struct {
	CatalogObject catalogObject `json:"catalog_object"`
}

func (c *Client) UpsertCatalogItem(ctx context.Context, name string, price order.Money) (commands.CatalogItem, error) {
	abbrev := name
	if len(abbrev) > 3 {
		abbrev = abbrev[:3]
	}
	variation := upsertVariation{ID: "#" + name + "-regular", Type: "ITEM_VARIATION"}
	variation.ItemVariationData.Name = "Regular"
	variation.ItemVariationData.PricingType = "FIXED_PRICING"
	variation.ItemVariationData.PriceMoney = moneyBody{Amount: price.Amount(), Currency: price.Currency()}

	req := upsertCatalogRequest{
		IdempotencyKey: uuid.NewString(),
		Object: upsertsObject{
			ID:   "#" + name,
			Type: "ITEM",
			ItemData: upsertItemData{
				Name:         name,
				Abbreviation: abbrev,
				Variations:   []upsertVariation{variation},
			},
		},
	}
	var resp upsertCatalogResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v2/catalog/object", req, &resp); err != nil {
		return commands.CatalogItem{}, err
	}
	item := commands.CatalogItem{ID: resp.CatalogObject.ID, Name: name}
	if resp.CatalogObject.ItemData != nil {
		item.Name = resp.CatalogObject.ItemData.Name
	}
	return item, nil
}

func (c *Client) credentials(ctx context.Context) Credentials {
	if creds, ok := CredentialsFromContext(ctx); ok && creds.AccessToken != "" {
		if creds.LocationID == "" {
			creds.LocationID = c.fallback.LocationID
		}
		return creds
	}
	return c.fallback
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("commerce: marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("commerce: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.credentials(ctx).AccessToken)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("commerce: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPStatusError{StatusCode: resp.StatusCode, URL: url, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("commerce: decode response: %w", err)
	}
	return nil
}
