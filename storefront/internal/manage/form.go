// Package manage holds the restaurant management form: its plain input
// record, the constraint table it is validated against, and the multipart
// encoding the backend expects.
package manage

import (
	"bytes"
	"fmt"
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"eatsfront/storefront/internal/domain"

	"github.com/pkg/errors"
)

type MenuItemInput struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type ImageFile struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}

// Form is the raw user input. Prices are in major units as typed.
type Form struct {
	RestaurantName       string          `json:"restaurantName"`
	City                 string          `json:"city"`
	Country              string          `json:"country"`
	DeliveryPrice        string          `json:"deliveryPrice"`
	EstimateDeliveryTime string          `json:"estimateDeliveryTime"`
	Cuisines             []string        `json:"cuisines"`
	MenuItems            []MenuItemInput `json:"menuItems"`
	ImageURL             string          `json:"imageUrl,omitempty"`
	ImageFile            *ImageFile      `json:"imageFile,omitempty"`
}

// NewForm is the blank form: no cuisines and one empty menu item row.
func NewForm() Form {
	return Form{
		Cuisines:  []string{},
		MenuItems: []MenuItemInput{{Name: "", Price: "0"}},
	}
}

// FromRestaurant prefills the form for editing. Prices go back to major units.
func FromRestaurant(r domain.Restaurant) Form {
	f := Form{
		RestaurantName:       r.RestaurantName,
		City:                 r.City,
		Country:              r.Country,
		DeliveryPrice:        fromMinor(r.DeliveryPrice),
		EstimateDeliveryTime: strconv.Itoa(r.EstimateDeliveryTime),
		Cuisines:             append([]string{}, r.Cuisines...),
		MenuItems:            make([]MenuItemInput, 0, len(r.MenuItems)),
		ImageURL:             r.ImageURL,
	}
	for _, item := range r.MenuItems {
		f.MenuItems = append(f.MenuItems, MenuItemInput{Name: item.Name, Price: fromMinor(item.Price)})
	}
	return f
}

// Encode validates the form and renders it as multipart/form-data. It returns
// the body and its content type.
func Encode(f Form) (*bytes.Buffer, string, error) {
	if violations := Validate(f); len(violations) > 0 {
		return nil, "", &ValidationError{Violations: violations}
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	deliveryPrice, _ := parseNumber(f.DeliveryPrice)
	estimate, _ := parseNumber(f.EstimateDeliveryTime)

	fields := [][2]string{
		{"restaurantName", f.RestaurantName},
		{"city", f.City},
		{"country", f.Country},
		{"deliveryPrice", strconv.Itoa(toMinor(deliveryPrice))},
		{"estimateDeliveryTime", strconv.FormatFloat(estimate, 'f', -1, 64)},
	}
	for i, cuisine := range f.Cuisines {
		fields = append(fields, [2]string{fmt.Sprintf("cuisines[%d]", i), cuisine})
	}
	for i, item := range f.MenuItems {
		price, _ := parseNumber(item.Price)
		fields = append(fields,
			[2]string{fmt.Sprintf("menuItems[%d][name]", i), item.Name},
			[2]string{fmt.Sprintf("menuItems[%d][price]", i), strconv.Itoa(toMinor(price))},
		)
	}

	for _, field := range fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", errors.Wrapf(err, "failed to write %s", field[0])
		}
	}

	if f.ImageFile != nil {
		part, err := w.CreateFormFile("imageFile", f.ImageFile.Filename)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to create image part")
		}
		if _, err := part.Write(f.ImageFile.Content); err != nil {
			return nil, "", errors.Wrap(err, "failed to write image part")
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to close multipart body")
	}
	return body, w.FormDataContentType(), nil
}

func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a number")
	}
	return v, nil
}

// toMinor rounds to the nearest minor unit so 4.99 becomes 499, not 498.
func toMinor(major float64) int {
	return int(math.Round(major * 100))
}

func fromMinor(minor int) string {
	return strconv.FormatFloat(float64(minor)/100, 'f', -1, 64)
}
