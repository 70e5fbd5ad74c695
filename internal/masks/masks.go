// Package masks formats phone and money input the way the reservation form
// displays them, and converts between the display form and stored values.
package masks

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	phoneMaxDigits = 11
	whatsAppPrefix = "https://wa.me/55"
)

var ErrInvalidWhatsApp = errors.New("whatsapp number needs at least 11 digits")

// Digits drops every non-digit rune.
func Digits(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone formats up to 11 digits as "(DD) DDDDD-DDDD", progressively.
func Phone(v string) string {
	d := Digits(v)
	if len(d) > phoneMaxDigits {
		d = d[:phoneMaxDigits]
	}
	switch {
	case len(d) > 7:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case len(d) > 2:
		return "(" + d[:2] + ") " + d[2:]
	}
	return d
}

// Currency formats typed digits as "1.234,56": the last two digits are cents.
func Currency(v string) string {
	d := strings.TrimLeft(Digits(v), "0")
	for len(d) < 3 {
		d = "0" + d
	}
	return group(d[:len(d)-2]) + "," + d[len(d)-2:]
}

// CentsToBRL renders stored cents in the same format Currency produces.
func CentsToBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + Currency(strconv.FormatInt(cents, 10))
}

// ParseBRL converts "1.234,56" into cents using the reservation server's
// rules: dots are separators, the comma is the decimal mark, anything
// unparseable is zero.
func ParseBRL(v string) int64 {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 100))
}

// WhatsAppURL builds the wa.me deep link; at least 11 digits are required.
func WhatsAppURL(phone string) (string, error) {
	d := Digits(phone)
	if len(d) < phoneMaxDigits {
		return "", ErrInvalidWhatsApp
	}
	return whatsAppPrefix + d, nil
}

func group(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	head := len(intPart) % 3
	var b strings.Builder
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String()
}
