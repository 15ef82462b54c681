package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentStatus represents the status of a payment
type PaymentStatus int

const (
	PaymentStatusUnpaid PaymentStatus = iota
	PaymentStatusPaid
	PaymentStatusPendingConfirmation
)

var paymentStatusNames = [...]string{"Unpaid", "Paid", "Pending Confirmation"}

func (s PaymentStatus) String() string {
	if s < 0 || int(s) >= len(paymentStatusNames) {
		return "Unknown"
	}
	return paymentStatusNames[s]
}

// IsValid reports whether the status is one of the known values
func (s PaymentStatus) IsValid() bool {
	return s >= PaymentStatusUnpaid && s <= PaymentStatusPendingConfirmation
}

// ParsePaymentStatus parses the public string form of a payment status
func ParsePaymentStatus(str string) (PaymentStatus, error) {
	for i, name := range paymentStatusNames {
		if name == str {
			return PaymentStatus(i), nil
		}
	}
	return PaymentStatusUnpaid, fmt.Errorf("unknown payment status: %q", str)
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	parsed, err := ParsePaymentStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
