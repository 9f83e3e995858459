package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber creates a unique human-readable order number
func GenerateOrderNumber() string {
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(uuid.New().String()[:6])

	// Format: ORD-YYYYMMDD-XXXXXX
	return fmt.Sprintf("ORD-%s-%s", datePart, randomPart)
}

// GeneratePaymentID creates a unique rental payment reference
func GeneratePaymentID() string {
	randomPart := strings.ToUpper(uuid.New().String()[:8])

	return fmt.Sprintf("PAY-%s", randomPart)
}
