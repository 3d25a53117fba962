package agent

import (
	"encoding/json"
	"fmt"

	"chatorder/internal/domain/chat"
)

// Prompt templates. The agent's output format is an unversioned contract
// with the summary parser; changing the summarize template means changing
// the parser too.

const conversePrompt = `Context: You are a customer service agent for a restaurant. You are chatting with a customer who wants to order food. Here is the history of chat you had with the customer: %s, now the customer is saying %s. Please respond to the customer in a polite manner. In case there is no history of chat, just respond to the customer's current message.
Task: Take the customer's order.
Order: Ask the customer for a dish from the menu, serve size and customization for all orders.
Menu includes %s along with dish price.
Ingredients include %s.
Not in menu: If the customer asks for something not in the menu, say that it is not available.
Customization: You can customize the menu as per customer requirement, keeping in mind the ingredients.
No customization: If no customization is possible due to lack of ingredients, just say that customization is not possible.
Stop: Once the customer is done ordering and you have confirmed the order, you can stop the chat by summarizing the order and saying: "STOPPING CHAT - Thank you for your order. Your order will be delivered in a few minutes. Have a nice day."
Continue: If the customer wants to order more, continue the chat by asking what else they would like to order.
Constraints: Only use ingredients available in the restaurant for customization. The customer can only order from the menu, one serve size at a time.
Pricing: Once a customer finalizes the dish, estimate the price based on the menu, serve size and quantity. Price = dish price * serve size * quantity; a large serve counts as two small serves. Do not consider individual ingredient prices.
Answer: Just provide the response to the customer.`

const summarizeOrderPrompt = `CONTEXT: You are an AI agent reading a conversation between a customer and a customer service agent about an order at a restaurant: %s. Summarize the order keeping dish, quantity and price intact.
TASK: Produce the order as JSON with the shape {"order": [{"name": "<dish>", "quantity": <number>, "base_price_money": {"amount": <minor units>, "currency": "<ISO code>"}}]}.
ANSWER: Provide only the JSON document, JSON-encoded as a single string.`

const summarizeHistoryPrompt = `CONTEXT: You are an AI agent reading a conversation between a customer and a customer service agent. Summarize the conversation keeping all important points intact.
TASK: Summarize the following conversation: %s
ANSWER: Just provide the summary as plain text.`

const reengineerDishPrompt = `Context: You are a chef of a %s restaurant. You are given a dish that you need to reengineer. Recommend another dish that uses the same ingredients as %s. You always have flour, water, spices, milk, curd, onion, tomato, ginger, garlic, oil, butter and ghee in your inventory.
Task: Reengineer the dish with the same ingredients; preparation and cook time of the new and old dish should be similar.
Answer: Provide JSON with the shape {"dish_name": "<name>", "price": {"amount": <minor units>, "currency": "<ISO code>"}}. Provide only the JSON document.`

const recommendMenuPrompt = `Context: You are a chef of a %s restaurant planning its menu. Here is the list of ingredients in your kitchen: %s. You always have flour, water, spices, milk, curd, onion, tomato, ginger, garlic, oil, butter and ghee in your inventory.
Task: Prepare a %s menu with multiple choices for Breakfast, Lunch, Dinner, Dessert, Drinks, Sides and Breads, with customizations based on the ingredients.
Constraints: Preparation time of the breakfast menu must be at most %s, lunch at most %s, dinner at most %s; cook time of breakfast at most %s, lunch at most %s, dinner at most %s. Prep time is the time to prepare a dish, cook time the time to cook it.
Answer: Provide the menu in JSON format grouped by course.`

func formatTranscript(transcript []chat.Turn) string {
	type entry struct {
		Customer string `json:"customer"`
		Agent    string `json:"agent"`
	}
	entries := make([]entry, 0, len(transcript))
	for _, t := range transcript {
		entries = append(entries, entry{Customer: t.Customer, Agent: t.Agent})
	}
	b, _ := json.Marshal(entries)
	return string(b)
}

func buildConversePrompt(history, message, menu, inventory string) string {
	if history == "" {
		history = "[]"
	}
	if menu == "" {
		menu = "[]"
	}
	if inventory == "" {
		inventory = "[]"
	}
	return fmt.Sprintf(conversePrompt, history, message, menu, inventory)
}
