package contact

import (
	"net/http"

	"pulsefit/internal/api"
	"pulsefit/internal/logger"
	"pulsefit/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	relay *Relay
}

// NewHandler builds the contact form handler. A nil relay disables inbox
// forwarding; submissions are still logged.
func NewHandler(relay *Relay) *Handler {
	return &Handler{
		relay: relay,
	}
}

// @Summary      Submit the contact form
// @Description  Records a prospect enquiry and redirects to the thank-you page.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Param        name formData string false "Sender name"
// @Param        email formData string false "Sender email"
// @Param        goal formData string false "Fitness goal"
// @Param        message formData string false "Message"
// @Success      303
// @Router       /api/contact [post]
func (h *Handler) Submit(c *gin.Context) {
	sub := Submission{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Goal:    c.PostForm("goal"),
		Message: c.PostForm("message"),
	}

	logger.Info("contact form submission",
		"name", sub.Name,
		"email", sub.Email,
		"goal", sub.Goal,
	)
	metrics.RecordContactSubmission()

	// Forwarding is best effort. The sender always lands on the thank-you
	// page; a relay outage or an unusable submission only shows up in the
	// logs. Staff cannot reply without a well-formed address, so those
	// submissions are not queued.
	if h.relay != nil {
		if errs := api.ValidateStruct(sub); len(errs) > 0 {
			logger.Info("contact submission not relayed", "reason", errs[0].Message)
		} else if err := h.relay.Enqueue(c.Request.Context(), sub); err != nil {
			logger.Error("failed to queue contact submission", "email", sub.Email, "error", err)
		}
	}

	c.Redirect(http.StatusSeeOther, "/thank-you")
}
