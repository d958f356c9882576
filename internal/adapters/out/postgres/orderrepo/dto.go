package orderrepo

import (
	"time"

	"ruralcart/internal/core/domain/model/driver"
	"ruralcart/internal/core/domain/model/order"
)

// OrderDTO maps the Order aggregate to the orders table. Both order variants
// share the row shape; Service discriminates them and the seller columns are
// populated only for necessities orders.
type OrderDTO struct {
	ID                  int64 `gorm:"primaryKey;autoIncrement"`
	Service             string
	Status              int
	BuyerID             int64 `gorm:"index"`
	BuyerName           string
	BuyerPhone          string
	SellerID            *int64 `gorm:"index"`
	SellerName          *string
	SellerPhone         *string
	Location            string
	IsUrgent            bool
	TotalPrice          float64
	Note                string
	PreviousDriverID    *int64
	PreviousDriverName  *string
	PreviousDriverPhone *string
	CreatedAt           time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default GORM table name.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO maps an order line item to the order_items table.
type ItemDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OrderID        int64 `gorm:"index"`
	ItemID         string
	Name           string
	Price          float64
	Quantity       int
	Image          string
	PickupLocation string
	DropLocation   string
	Category       string
}

// TableName overrides the default GORM table name.
func (ItemDTO) TableName() string {
	return "order_items"
}

// DomainToDTO converts an Order aggregate to its database representation.
func DomainToDTO(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID(),
		Service:    string(aggregate.Service()),
		Status:     int(aggregate.Status()),
		BuyerID:    aggregate.Buyer().ID,
		BuyerName:  aggregate.Buyer().Name,
		BuyerPhone: aggregate.Buyer().Phone,
		Location:   aggregate.Location(),
		IsUrgent:   aggregate.IsUrgent(),
		TotalPrice: aggregate.TotalPrice(),
		Note:       aggregate.Note(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	if seller := aggregate.Seller(); seller != nil {
		dto.SellerID = &seller.ID
		dto.SellerName = &seller.Name
		dto.SellerPhone = &seller.Phone
	}

	if prev := aggregate.PreviousDriver(); prev != nil {
		dto.PreviousDriverID = &prev.ID
		dto.PreviousDriverName = &prev.Name
		dto.PreviousDriverPhone = &prev.Phone
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:        aggregate.ID(),
			ItemID:         item.ItemID(),
			Name:           item.Name(),
			Price:          item.Price(),
			Quantity:       item.Quantity(),
			Image:          item.Image(),
			PickupLocation: item.Pickup(),
			DropLocation:   item.Drop(),
			Category:       item.Category(),
		})
	}

	return dto
}

// DtoToDomain reconstructs an Order aggregate from its database representation.
func DtoToDomain(dto OrderDTO) (*order.Order, error) {
	var seller *order.Party
	if dto.SellerID != nil {
		seller = &order.Party{
			ID:    *dto.SellerID,
			Name:  derefString(dto.SellerName),
			Phone: derefString(dto.SellerPhone),
		}
	}

	var previous *driver.Snapshot
	if dto.PreviousDriverID != nil {
		previous = &driver.Snapshot{
			ID:    *dto.PreviousDriverID,
			Name:  derefString(dto.PreviousDriverName),
			Phone: derefString(dto.PreviousDriverPhone),
		}
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(
			itemDTO.ItemID,
			itemDTO.Name,
			itemDTO.Price,
			itemDTO.Quantity,
			itemDTO.Image,
			itemDTO.PickupLocation,
			itemDTO.DropLocation,
			itemDTO.Category,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		order.Service(dto.Service),
		order.Status(dto.Status),
		order.Party{ID: dto.BuyerID, Name: dto.BuyerName, Phone: dto.BuyerPhone},
		seller,
		dto.Location,
		dto.IsUrgent,
		dto.TotalPrice,
		dto.Note,
		items,
		previous,
		dto.CreatedAt,
	)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
