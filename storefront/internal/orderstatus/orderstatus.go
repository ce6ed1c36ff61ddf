// Package orderstatus maps backend order status codes to what the tracking
// page shows: a label, a progress percentage and the expected delivery time.
package orderstatus

import (
	"fmt"
	"time"
)

type Info struct {
	Value         string `json:"value"`
	Label         string `json:"label"`
	ProgressValue int    `json:"progressValue"`
}

// Statuses is ordered by progress. The first entry doubles as the fallback
// for codes the table does not know.
var Statuses = []Info{
	{Value: "placed", Label: "Placed", ProgressValue: 0},
	{Value: "paid", Label: "Awaiting Restaurant Confirmation", ProgressValue: 25},
	{Value: "inProgress", Label: "In Progress", ProgressValue: 50},
	{Value: "outForDelivery", Label: "Out for Delivery", ProgressValue: 75},
	{Value: "delivered", Label: "Delivered", ProgressValue: 100},
}

func Lookup(status string) Info {
	for _, info := range Statuses {
		if info.Value == status {
			return info
		}
	}
	return Statuses[0]
}

// Projection is what a single order looks like on the tracking page.
type Projection struct {
	Info
	ExpectedDelivery string `json:"expectedDelivery"`
}

func Project(status string, createdAt time.Time, estimateDeliveryMinutes int, loc *time.Location) Projection {
	return Projection{
		Info:             Lookup(status),
		ExpectedDelivery: ExpectedDelivery(createdAt, estimateDeliveryMinutes, loc),
	}
}

// ExpectedDelivery formats createdAt + minutes as H:MM on a 24 hour clock in
// loc. The hour is not padded.
func ExpectedDelivery(createdAt time.Time, estimateDeliveryMinutes int, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	expected := createdAt.Add(time.Duration(estimateDeliveryMinutes) * time.Minute).In(loc)
	return fmt.Sprintf("%d:%02d", expected.Hour(), expected.Minute())
}
