package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const linkBase = "https://wa.me/"

// Digits оставляет в номере только цифры
func Digits(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// BuildLink собирает ссылку wa.me с предзаполненным текстом
func BuildLink(number, text string) (string, error) {
	digits := Digits(number)
	if digits == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}

	link := linkBase + digits
	if text != "" {
		// пробел кодируется как %20, а не "+"
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link, nil
}

// ClientLink ссылка для связи администратора с клиентом
func ClientLink(phone string) (string, error) {
	return BuildLink(phone, "")
}
