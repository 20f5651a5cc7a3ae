package service

import (
	"fmt"
	"strings"

	"github.com/tempdev/site/internal/apperr"
	"github.com/tempdev/site/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ChatService answers visitor questions about the vehicle catalog.
type ChatService interface {
	Reply(msg string) (string, error)
}

// chatRule answers when any of its keywords occurs in the lowercased message.
type chatRule struct {
	keywords []string
	answer   func(v model.Vehicle) string
}

type chatServiceImpl struct {
	catalog []model.Vehicle
	rules   []chatRule
}

const emptyCatalogReply = "I can help with models and specs."

// NewChatService builds the responder over catalog. Rules are checked in order.
func NewChatService(catalog []model.Vehicle) ChatService {
	p := message.NewPrinter(language.English)
	rules := []chatRule{
		{
			keywords: []string{"price", "cost"},
			answer: func(v model.Vehicle) string {
				return p.Sprintf("The %s starts at $%d before options.", v.Model, v.BasePrice)
			},
		},
		{
			keywords: []string{"range", "battery"},
			answer: func(v model.Vehicle) string {
				return fmt.Sprintf("The %s delivers up to %s with the standard pack.", v.Model, v.Specs.Range)
			},
		},
		{
			keywords: []string{"performance", "0-60", "speed"},
			answer: func(v model.Vehicle) string {
				return fmt.Sprintf("Performance highlights: %s, 0-60 in %s, top speed %s.", v.Specs.Power, v.Specs.ZeroTo60, v.Specs.TopSpeed)
			},
		},
		{
			keywords: []string{"trim"},
			answer: func(v model.Vehicle) string {
				names := make([]string, 0, len(v.Trims))
				for _, t := range v.Trims {
					names = append(names, t.Name)
				}
				return fmt.Sprintf("Available trims for the %s: %s.", v.Model, strings.Join(names, ", "))
			},
		},
		{
			keywords: []string{"custom", "configure"},
			answer: func(model.Vehicle) string {
				return "You can customize color, wheels, and trim. Open a model and hit Configure to see the live changes."
			},
		},
	}
	return &chatServiceImpl{catalog: catalog, rules: rules}
}

func (s *chatServiceImpl) Reply(msg string) (string, error) {
	text := strings.ToLower(strings.TrimSpace(msg))
	if text == "" {
		return "", apperr.Validation("Message required.")
	}
	if len(s.catalog) == 0 {
		return emptyCatalogReply, nil
	}

	featured := s.featured(text)
	for _, r := range s.rules {
		if containsAny(text, r.keywords) {
			return r.answer(featured), nil
		}
	}
	return fmt.Sprintf("I can help with pricing, performance, trims, or customization for %s. Ask away!", featured.Model), nil
}

// featured returns the first vehicle whose model's first word appears in
// text, falling back to the first vehicle in the catalog.
func (s *chatServiceImpl) featured(text string) model.Vehicle {
	for _, v := range s.catalog {
		words := strings.Fields(strings.ToLower(v.Model))
		if len(words) > 0 && strings.Contains(text, words[0]) {
			return v
		}
	}
	return s.catalog[0]
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
