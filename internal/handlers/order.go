package handlers

import (
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"umbaer-craft-backend/internal/config"
	"umbaer-craft-backend/internal/models"
	"umbaer-craft-backend/internal/services"
	"umbaer-craft-backend/internal/storage"
)

// MaxReferenceFiles caps reference images per order; extras are dropped.
const MaxReferenceFiles = 5

const maxMultipartMemory = 32 << 20 // 32MB

// TicketOpener is the slice of the ticket service the handler needs.
type TicketOpener interface {
	Ready() bool
	OpenTicket(sub models.OrderSubmission, uploads []storage.SavedFile) (*services.TicketResult, error)
}

type OrderHandler struct {
	cfg     *config.Config
	tickets TicketOpener
	store   *storage.Store
}

func NewOrderHandler(cfg *config.Config, tickets TicketOpener, store *storage.Store) *OrderHandler {
	return &OrderHandler{
		cfg:     cfg,
		tickets: tickets,
		store:   store,
	}
}

// CreateOrder godoc
// @Summary     Submit an order
// @Description Accepts one multipart order submission, opens a private ticket channel on Discord and posts the order summary with the payment slip and reference images attached. Temporary upload files are deleted before responding, whether or not the send succeeded.
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Param       name formData string true "Customer display name"
// @Param       discordId formData string true "Numeric Discord ID or opaque tag"
// @Param       scale formData string false "Resolution bucket, or figura"
// @Param       part formData string false "full, head or body"
// @Param       price formData string true "Client-computed price"
// @Param       paymentMethod formData string true "Payment method"
// @Param       slip formData file true "Payment proof image"
// @Param       references formData file false "Up to 5 reference images"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /api/order [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	log.Println("Received order request")

	if !h.cfg.DiscordConfigured() {
		h.respondError(c, http.StatusInternalServerError, models.ErrKindConfig,
			"Missing Discord Configuration", nil)
		return
	}
	if h.tickets == nil || !h.tickets.Ready() {
		h.respondError(c, http.StatusServiceUnavailable, models.ErrKindNotReady,
			"Discord connection not ready, please retry shortly", nil)
		return
	}

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.respondError(c, http.StatusBadRequest, models.ErrKindBadRequest,
			"Failed to parse multipart form", err)
		return
	}
	form := c.Request.MultipartForm
	if form == nil {
		h.respondError(c, http.StatusBadRequest, models.ErrKindBadRequest,
			"Failed to parse multipart form", nil)
		return
	}

	sub := models.OrderSubmission{
		Name:          c.PostForm("name"),
		DiscordID:     c.PostForm("discordId"),
		Scale:         c.PostForm("scale"),
		Part:          c.PostForm("part"),
		Price:         c.PostForm("price"),
		PaymentMethod: c.PostForm("paymentMethod"),
	}

	upload, err := h.store.Begin()
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, models.ErrKindUpload,
			"Failed to store uploads", err)
		return
	}

	referenceCount, err := saveUploads(upload, form)
	if err != nil {
		upload.Cleanup()
		h.respondError(c, http.StatusInternalServerError, models.ErrKindUpload,
			"Failed to store uploads", err)
		return
	}

	result, err := h.tickets.OpenTicket(sub, upload.Files())

	// Uploads are transient by contract: gone before the response in both
	// the success and the failure case.
	upload.Cleanup()

	if err != nil {
		status := http.StatusInternalServerError
		kind := models.ErrKindSend
		message := "Failed to create order ticket"
		if terr, ok := err.(*services.TicketError); ok {
			kind = terr.Kind
			message = terr.Message
		}
		h.respondError(c, status, kind, message, err)
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{
		Success:        true,
		ChannelID:      result.ChannelID,
		Message:        "Ticket created successfully",
		ReferenceCount: referenceCount,
	})
}

// saveUploads persists the slip and up to MaxReferenceFiles references,
// returning how many references were accepted.
func saveUploads(upload *storage.Upload, form *multipart.Form) (int, error) {
	if slips := form.File["slip"]; len(slips) > 0 {
		if _, err := upload.Save("slip", slips[0]); err != nil {
			return 0, err
		}
	}

	references := form.File["references"]
	if len(references) > MaxReferenceFiles {
		log.Printf("Capping reference uploads: got %d, keeping %d", len(references), MaxReferenceFiles)
		references = references[:MaxReferenceFiles]
	}
	for _, fh := range references {
		if _, err := upload.Save("references", fh); err != nil {
			return 0, err
		}
	}
	return len(references), nil
}

// respondError logs the full failure server-side and returns the safe
// message. The diagnostic detail only reaches the payload when DEBUG_ERRORS
// is on.
func (h *OrderHandler) respondError(c *gin.Context, status int, kind, message string, err error) {
	if err != nil {
		log.Printf("Error creating order (%s): %v", kind, err)
	} else {
		log.Printf("Error creating order (%s): %s", kind, message)
	}

	resp := models.ErrorResponse{
		Success: false,
		Error:   message,
		Kind:    kind,
	}
	if h.cfg.DebugErrors && err != nil {
		resp.Detail = err.Error()
	}
	c.JSON(status, resp)
}
