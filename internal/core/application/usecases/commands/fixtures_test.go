package commands_test

import (
	"testing"
	"time"

	"ruralcart/internal/core/application/usecases/commands"
	"ruralcart/internal/core/domain/model/custody"
	"ruralcart/internal/core/domain/model/driver"
	"ruralcart/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testBuyer() order.Party {
	return order.Party{ID: 21, Name: "Malee", Phone: "0811111111"}
}

func testSeller() *order.Party {
	return &order.Party{ID: 34, Name: "Village Shop", Phone: "0822222222"}
}

func testItemInputs() []commands.ItemInput {
	return []commands.ItemInput{
		{ItemID: "rice-5kg", Name: "Rice 5kg", Price: 120, Quantity: 2, Category: "staples"},
		{ItemID: "eggs-10", Name: "Eggs (10)", Price: 55, Quantity: 1, Category: "fresh"},
	}
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	items := make([]order.Item, 0, 2)
	for _, input := range testItemInputs() {
		item, err := order.NewItem(
			input.ItemID, input.Name, input.Price, input.Quantity,
			input.Image, input.Pickup, input.Drop, input.Category,
		)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func testNecessitiesOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		order.Necessities,
		testBuyer(),
		testSeller(),
		"Ban Nong Khai",
		false,
		"leave at the gate",
		testItems(t),
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	return o
}

func testAcceptedOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o := testNecessitiesOrder(t, id)
	require.NoError(t, o.Accept())
	return o
}

func testDriver(t *testing.T, id int64, userID int64, name, phone string) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(id, userID, name, phone)
	require.NoError(t, err)
	return d
}

func testActiveClaim(t *testing.T, id, driverID, orderID int64) *custody.Record {
	t.Helper()
	r, err := custody.RestoreRecord(
		id, driverID, orderID,
		custody.ActionAccepted, order.Necessities,
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		nil,
	)
	require.NoError(t, err)
	return r
}
