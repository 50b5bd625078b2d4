package checkout

import (
	"github.com/ariefcatur/go-storefront/internal/orders"
	"github.com/go-playground/validator/v10"
	"regexp"
	"sort"
	"strings"
)

const PaymentCard = "card"

// Form is the checkout form as submitted.
type Form struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	StreetAddress string `json:"streetAddress"`
	Apartment     string `json:"apartment"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`

	ShippingSameAsBilling bool   `json:"shippingSameAsBilling"`
	ShippingStreetAddress string `json:"shippingStreetAddress"`
	ShippingApartment     string `json:"shippingApartment"`
	ShippingCity          string `json:"shippingCity"`
	ShippingState         string `json:"shippingState"`
	ShippingZipCode       string `json:"shippingZipCode"`
	ShippingCountry       string `json:"shippingCountry"`

	PaymentMethod string `json:"paymentMethod"`
	CardNumber    string `json:"cardNumber"`
	CardName      string `json:"cardName"`
	CardExpiry    string `json:"cardExpiry"`
	CardCvv       string `json:"cardCvv"`

	OrderNotes string `json:"orderNotes"`
}

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid checkout form: " + strings.Join(parts, "; ")
}

var (
	phoneRe      = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	zipRe        = regexp.MustCompile(`^\d{5}(-\d{4})?$|^\d{6}$`)
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)

	validate = newValidator()
)

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func newValidator() *validator.Validate {
	v := validator.New()
	match := func(re *regexp.Regexp, norm func(string) string) validator.Func {
		return func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if norm != nil {
				s = norm(s)
			}
			return re.MatchString(s)
		}
	}
	_ = v.RegisterValidation("phone", match(phoneRe, stripSpaces))
	_ = v.RegisterValidation("zipcode", match(zipRe, nil))
	_ = v.RegisterValidation("cardnumber", match(cardNumberRe, stripSpaces))
	_ = v.RegisterValidation("expiry", match(expiryRe, nil))
	_ = v.RegisterValidation("cvv", match(cvvRe, nil))
	return v
}

type check struct{ tag, msg string }

type rule struct {
	field  string
	value  func(Form) string
	checks []check
}

func required(msg string) check { return check{"required", msg} }

var personalRules = []rule{
	{"firstName", func(f Form) string { return f.FirstName }, []check{required("First name is required")}},
	{"lastName", func(f Form) string { return f.LastName }, []check{required("Last name is required")}},
	{"email", func(f Form) string { return f.Email }, []check{required("Email is required"), {"email", "Please enter a valid email address"}}},
	{"phone", func(f Form) string { return f.Phone }, []check{required("Phone number is required"), {"phone", "Please enter a valid phone number"}}},
	{"streetAddress", func(f Form) string { return f.StreetAddress }, []check{required("Street address is required")}},
	{"city", func(f Form) string { return f.City }, []check{required("City is required")}},
	{"state", func(f Form) string { return f.State }, []check{required("State is required")}},
	{"zipCode", func(f Form) string { return f.ZipCode }, []check{required("Zip code is required"), {"zipcode", "Please enter a valid zip code"}}},
	{"country", func(f Form) string { return f.Country }, []check{required("Country is required")}},
}

var shippingRules = []rule{
	{"shippingStreetAddress", func(f Form) string { return f.ShippingStreetAddress }, []check{required("Shipping street address is required")}},
	{"shippingCity", func(f Form) string { return f.ShippingCity }, []check{required("Shipping city is required")}},
	{"shippingState", func(f Form) string { return f.ShippingState }, []check{required("Shipping state is required")}},
	{"shippingZipCode", func(f Form) string { return f.ShippingZipCode }, []check{required("Shipping zip code is required")}},
	{"shippingCountry", func(f Form) string { return f.ShippingCountry }, []check{required("Shipping country is required")}},
}

var cardRules = []rule{
	{"cardNumber", func(f Form) string { return f.CardNumber }, []check{required("Card number is required"), {"cardnumber", "Please enter a valid 16-digit card number"}}},
	{"cardName", func(f Form) string { return f.CardName }, []check{required("Cardholder name is required")}},
	{"cardExpiry", func(f Form) string { return f.CardExpiry }, []check{required("Expiry date is required"), {"expiry", "Please enter a valid expiry date (MM/YY)"}}},
	{"cardCvv", func(f Form) string { return f.CardCvv }, []check{required("CVV is required"), {"cvv", "Please enter a valid CVV"}}},
}

// Validate returns FieldErrors when the form is not acceptable.
func (f Form) Validate() error {
	rules := append([]rule{}, personalRules...)
	if !f.ShippingSameAsBilling {
		rules = append(rules, shippingRules...)
	}
	if f.paymentMethod() == PaymentCard {
		rules = append(rules, cardRules...)
	}

	errs := FieldErrors{}
	for _, r := range rules {
		v := strings.TrimSpace(r.value(f))
		for _, c := range r.checks {
			if validate.Var(v, c.tag) != nil {
				errs[r.field] = c.msg
				break
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f Form) paymentMethod() string {
	if f.PaymentMethod == "" {
		return PaymentCard
	}
	return f.PaymentMethod
}

// Customer converts the form into order customer details. Card data is
// never copied onto the order.
func (f Form) Customer() orders.CustomerDetails {
	billing := orders.Address{
		Street:    f.StreetAddress,
		Apartment: f.Apartment,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
		Country:   f.Country,
	}
	shipping := billing
	if !f.ShippingSameAsBilling {
		shipping = orders.Address{
			Street:    f.ShippingStreetAddress,
			Apartment: f.ShippingApartment,
			City:      f.ShippingCity,
			State:     f.ShippingState,
			ZipCode:   f.ShippingZipCode,
			Country:   f.ShippingCountry,
		}
	}
	return orders.CustomerDetails{
		FirstName:       strings.TrimSpace(f.FirstName),
		LastName:        strings.TrimSpace(f.LastName),
		Email:           strings.TrimSpace(f.Email),
		Phone:           strings.TrimSpace(f.Phone),
		BillingAddress:  billing,
		ShippingAddress: shipping,
		PaymentMethod:   f.paymentMethod(),
		OrderNotes:      f.OrderNotes,
	}
}
