package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a customer pays for an order
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodTransfer
	PaymentMethodQRIS
	PaymentMethodCOD
)

var paymentMethodNames = [...]string{"Cash", "Transfer", "QRIS", "COD"}

func (m PaymentMethod) String() string {
	if m < 0 || int(m) >= len(paymentMethodNames) {
		return "Unknown"
	}
	return paymentMethodNames[m]
}

// IsValid reports whether the method is one of the known values
func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodCOD
}

// ParsePaymentMethod parses the public string form of a payment method
func ParsePaymentMethod(str string) (PaymentMethod, error) {
	for i, name := range paymentMethodNames {
		if name == str {
			return PaymentMethod(i), nil
		}
	}
	return PaymentMethodCash, fmt.Errorf("unknown payment method: %q", str)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
