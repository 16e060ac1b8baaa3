package ecobot

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultReply = "EcoBot 🌿: Pergunte sobre consumo consciente, energia ou água."

type rule struct {
	keyword string
	reply   string
}

// checked in order; first match wins
var rules = []rule{
	{"ola", "Olá! 🌱 Sou o EcoBot. Como posso ajudar na sua jornada sustentável?"},
	{"consumo consciente", "Consumo consciente é comprar apenas o necessário e preferir produtos duráveis. ♻️"},
	{"energia", "Desligue aparelhos, use LED e aproveite luz natural! 💡"},
	{"agua", "Economize água: banhos curtos e conserte vazamentos! 💧"},
}

type Service interface {
	Reply(message string) string
}

type Impl struct{}

func New() Service {
	return &Impl{}
}

// Reply matches keywords case- and accent-insensitively, so "Olá" and "ÁGUA" hit.
func (s *Impl) Reply(message string) string {
	msg := fold(message)
	for _, r := range rules {
		if strings.Contains(msg, r.keyword) {
			return r.reply
		}
	}
	return DefaultReply
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
