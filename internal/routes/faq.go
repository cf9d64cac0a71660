package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fundezy-io/fundezy-web/internal/faq"
)

type faqItemResponse struct {
	ID               int             `json:"id"`
	Category         string          `json:"category"`
	Question         string          `json:"question"`
	QuestionSegments []faq.Segment   `json:"questionSegments"`
	AnswerSegments   []faq.Segment   `json:"answerSegments,omitempty"`
	AnswerRich       json.RawMessage `json:"answerRich,omitempty"`
}

// RegisterFAQRoutes wires the help-center search endpoint.
func RegisterFAQRoutes(r fiber.Router, items []faq.Item) {
	r.Get("/faq", func(c *fiber.Ctx) error {
		category := c.Query("category", faq.AllCategories)
		query := c.Query("q")

		filtered := faq.Filter(items, category, query)
		out := make([]faqItemResponse, 0, len(filtered))
		for _, item := range filtered {
			resp := faqItemResponse{
				ID:               item.ID,
				Category:         item.Category,
				Question:         item.Question,
				QuestionSegments: faq.Highlight(item.Question, query),
			}
			if item.Answer.IsText() {
				resp.AnswerSegments = faq.Highlight(item.Answer.Text, query)
			} else {
				resp.AnswerRich = item.Answer.Rich
			}
			out = append(out, resp)
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"categories": faq.Categories(items),
			"items":      out,
		})
	})
}
