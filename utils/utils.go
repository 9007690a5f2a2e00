package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// NewPaymentReference returns a server-side unique reference for a
// manual payment record.
func NewPaymentReference() string {
	return uuid.NewString()
}

// NewCertificateSerial returns the serial number printed on an issued
// certificate.
func NewCertificateSerial() string {
	return uuid.NewString()
}

// RoundPercent converts completed/total into a whole-number percentage,
// rounding half away from zero. Returns 0 when total is 0.
func RoundPercent(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
