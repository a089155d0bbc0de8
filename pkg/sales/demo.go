package sales

import (
	"fmt"
	"math/rand"
	"time"
)

// DemoDataset returns a deterministic synthetic order report, used
// when no CSV is configured so the dashboard always has something to
// show. The same dataset is produced on every call.
func DemoDataset() *Dataset {
	rng := rand.New(rand.NewSource(42))

	places := []struct{ city, state string }{
		{"Mumbai", "Maharashtra"},
		{"Pune", "Maharashtra"},
		{"Bengaluru", "Karnataka"},
		{"Hyderabad", "Telangana"},
		{"Chennai", "Tamil Nadu"},
		{"New Delhi", "Delhi"},
		{"Kolkata", "West Bengal"},
		{"Lucknow", "Uttar Pradesh"},
	}
	categories := []string{"Kurta", "Set", "Western Dress", "Top", "Saree", "Ethnic Dress"}
	statuses := []string{
		"Shipped",
		"Shipped",
		"Shipped - Delivered to Buyer",
		"Shipped - Delivered to Buyer",
		"Shipped - Delivered to Buyer",
		"Pending",
		"Pending - Waiting for Pick Up",
		"Cancelled",
		"Shipped - Returned to Seller",
	}

	start := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)
	ds := &Dataset{}
	for i := 0; i < 180; i++ {
		date := start.AddDate(0, 0, rng.Intn(91))
		p := places[rng.Intn(len(places))]
		ds.Orders = append(ds.Orders, Order{
			ID:       fmt.Sprintf("405-%07d", i+1),
			Date:     date,
			Month:    date.Format("2006-01"),
			Category: categories[rng.Intn(len(categories))],
			State:    p.state,
			City:     p.city,
			Status:   statuses[rng.Intn(len(statuses))],
			Amount:   float64(200+rng.Intn(1400)) + float64(rng.Intn(100))/100,
		})
	}

	ds.buildOptions()
	return ds
}
