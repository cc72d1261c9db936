package httpapi

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-affiliate-service/internal/domain"
	clickuc "github.com/LavaJover/shvark-affiliate-service/internal/usecase/click"
	clickdto "github.com/LavaJover/shvark-affiliate-service/internal/usecase/dto/click"
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "aff_session"

type ClickHandler struct {
	clickUsecase clickuc.ClickUsecase
	cookieMaxAge int
}

func NewClickHandler(clickUsecase clickuc.ClickUsecase) *ClickHandler {
	return &ClickHandler{
		clickUsecase: clickUsecase,
		cookieMaxAge: 90 * 24 * 3600,
	}
}

// Redirect обрабатывает GET /r - переход по партнёрской ссылке.
// Session cookie is set only when the recorder reports a new session.
func (h *ClickHandler) Redirect(c *gin.Context) {
	offerID := c.Query("offer_id")
	if offerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer_id is required"})
		return
	}

	sessionKey, _ := c.Cookie(sessionCookieName)

	input := &clickdto.RecordClickInput{
		OfferID:     offerID,
		PublisherID: c.Query("pub_id"),
		IP:          c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		Referrer:    c.Request.Referer(),
		SubID1:      c.Query("sub1"),
		SubID2:      c.Query("sub2"),
		SubID3:      c.Query("sub3"),
		SessionKey:  sessionKey,
	}

	output, err := h.clickUsecase.RecordClick(c.Request.Context(), input)
	if err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	if output.IsNewSession {
		c.SetCookie(sessionCookieName, output.SessionKey, h.cookieMaxAge, "/", "", false, true)
	}

	c.Redirect(http.StatusFound, output.RedirectURL)
}

// RecordClick обрабатывает POST /api/clicks - JSON-вариант для коллабораторов,
// которым нужен clickId вместо редиректа.
func (h *ClickHandler) RecordClick(c *gin.Context) {
	var req struct {
		OfferID     string `json:"offer_id" binding:"required"`
		PublisherID string `json:"publisher_id"`
		IP          string `json:"ip"`
		UserAgent   string `json:"user_agent"`
		Referrer    string `json:"referrer"`
		Sub1        string `json:"sub1"`
		Sub2        string `json:"sub2"`
		Sub3        string `json:"sub3"`
		SessionKey  string `json:"session_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ip := req.IP
	if ip == "" {
		ip = c.ClientIP()
	}

	output, err := h.clickUsecase.RecordClick(c.Request.Context(), &clickdto.RecordClickInput{
		OfferID:     req.OfferID,
		PublisherID: req.PublisherID,
		IP:          ip,
		UserAgent:   req.UserAgent,
		Referrer:    req.Referrer,
		SubID1:      req.Sub1,
		SubID2:      req.Sub2,
		SubID3:      req.Sub3,
		SessionKey:  req.SessionKey,
	})
	if err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"click_id":       output.ClickID,
		"tracking_code":  output.TrackingCode,
		"redirect_url":   output.RedirectURL,
		"session_key":    output.SessionKey,
		"is_new_session": output.IsNewSession,
	})
}

// GetClick обрабатывает GET /api/clicks/:id
func (h *ClickHandler) GetClick(c *gin.Context) {
	click, err := h.clickUsecase.GetClickByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClickNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "click not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toClickResponse(click))
}

func toClickResponse(click *domain.ClickEvent) gin.H {
	return gin.H{
		"click_id":      click.ID,
		"offer_id":      click.OfferID,
		"publisher_id":  click.PublisherID,
		"session_id":    click.SessionID,
		"tracking_code": click.TrackingCode.String(),
		"device_type":   string(click.DeviceType),
		"is_bot":        click.IsBot,
		"country":       click.Country,
		"city":          click.City,
		"is_converted":  click.IsConverted,
		"conversion_id": click.ConversionID,
		"created_at":    click.CreatedAt,
	}
}
