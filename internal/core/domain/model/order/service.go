package order

import (
	"fmt"

	"ruralcart/internal/pkg/errs"
)

// Service discriminates the two order variants the marketplace coordinates.
type Service string

const (
	// Necessities is a general goods order placed against a seller.
	Necessities Service = "necessities"

	// AgriculturalProduct is a perishable produce order with no seller-facing view.
	AgriculturalProduct Service = "agricultural_product"
)

// ParseService converts a wire value into a Service.
func ParseService(s string) (Service, error) {
	service := Service(s)
	if err := service.Validate(); err != nil {
		return "", err
	}
	return service, nil
}

// Validate checks that the Service is one of the two known variants.
func (s Service) Validate() error {
	switch s {
	case Necessities, AgriculturalProduct:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("service",
			fmt.Errorf("%q is not a known service", string(s)))
	}
}

func (s Service) String() string {
	return string(s)
}
