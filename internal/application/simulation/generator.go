package simulation

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	apporder "github.com/logistics/engine/internal/application/order"
	"github.com/logistics/engine/internal/domain/customer"
	"github.com/logistics/engine/internal/domain/inventory"
)

// Lookup tables for plausible synthetic orders. Values are stable so load
// runs produce recognizable, comparable data.
var (
	streetNames = []string{
		"Main", "Oak", "Pine", "Maple", "Cedar",
		"Elm", "Washington", "Lake", "Hill", "Park",
	}

	cities = []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
		"Austin", "Jacksonville", "Fort Worth", "Columbus", "San Francisco",
		"Charlotte", "Indianapolis", "Seattle", "Denver", "Boston",
	}

	states = []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
		"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
		"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
		"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
		"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	}

	shippingMethods = []string{"Standard", "Express", "Next Day", "Two Day", "Economy"}

	paymentMethods = []string{"Credit Card", "Debit Card", "PayPal", "Apple Pay", "Google Pay"}

	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer",
		"Michael", "Linda", "William", "Elizabeth", "David", "Susan",
		"Richard", "Jessica", "Joseph", "Sarah", "Thomas", "Karen",
		"Charles", "Nancy", "Christopher", "Lisa", "Daniel", "Betty",
		"Matthew", "Dorothy", "Anthony", "Sandra", "Mark", "Ashley",
		"Donald", "Kimberly",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis",
		"Miller", "Wilson", "Moore", "Taylor", "Anderson", "Thomas",
		"Jackson", "White", "Harris", "Martin", "Thompson", "Garcia",
		"Martinez", "Robinson", "Clark", "Rodriguez", "Lewis", "Lee",
		"Walker", "Hall", "Allen", "Young", "Hernandez", "King",
		"Wright", "Lopez",
	}
)

const alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// generator composes synthetic create-order requests from sampled catalog
// rows. It is not safe for concurrent use; the producer owns one.
type generator struct {
	rng      *rand.Rand
	maxItems int
}

func newGenerator(rng *rand.Rand, maxItems int) *generator {
	if maxItems < 1 {
		maxItems = 1
	}
	return &generator{rng: rng, maxItems: maxItems}
}

// buildRequest assembles a plausible order for the sampled customer from
// the given catalog items. Unit prices come from the item rows; the
// shipping cost is rounded to the storage precision.
func (g *generator) buildRequest(c *customer.Customer, catalog []inventory.InventoryItem) apporder.CreateOrderRequest {
	numItems := 1 + g.rng.IntN(g.maxItems)
	items := make([]apporder.CreateOrderItemInput, 0, numItems)
	for i := 0; i < numItems; i++ {
		item := catalog[g.rng.IntN(len(catalog))]
		items = append(items, apporder.CreateOrderItemInput{
			ProductID: item.ID.String(),
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  int32(1 + g.rng.IntN(3)),
			UnitPrice: item.Price,
		})
	}

	transactionID := "TXN-" + g.randomString(10)

	return apporder.CreateOrderRequest{
		CustomerID: c.ID,
		Items:      items,
		Shipping:   g.shippingInput(),
		Payment: apporder.PaymentInput{
			PaymentMethod: pick(g.rng, paymentMethods),
			TransactionID: &transactionID,
		},
		Currency: "USD",
	}
}

func (g *generator) shippingInput() apporder.ShippingInput {
	input := apporder.ShippingInput{
		AddressLine1:   fmt.Sprintf("%d %s St", 100+g.rng.IntN(9900), pick(g.rng, streetNames)),
		City:           pick(g.rng, cities),
		State:          pick(g.rng, states),
		PostalCode:     fmt.Sprintf("%05d", 10000+g.rng.IntN(89999)),
		Country:        "US",
		RecipientName:  pick(g.rng, firstNames) + " " + pick(g.rng, lastNames),
		ShippingMethod: pick(g.rng, shippingMethods),
		ShippingCost:   decimal.NewFromFloat(5.0 + g.rng.Float64()*15.0).Round(2),
	}

	if g.rng.Float64() < 0.3 {
		apt := fmt.Sprintf("Apt %d", 1+g.rng.IntN(99))
		input.AddressLine2 = &apt
	}

	phone := fmt.Sprintf("+1%d%d%d", 200+g.rng.IntN(799), 100+g.rng.IntN(899), 1000+g.rng.IntN(8999))
	input.RecipientPhone = &phone

	return input
}

func (g *generator) randomString(length int) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = alphanumerics[g.rng.IntN(len(alphanumerics))]
	}
	return string(out)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
