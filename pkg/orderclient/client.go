package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Result is the server's acknowledgement of a created ticket.
type Result struct {
	ChannelID      string
	Message        string
	ReferenceCount int
}

type orderResponse struct {
	Success        bool   `json:"success"`
	ChannelID      string `json:"channelId"`
	Message        string `json:"message"`
	ReferenceCount int    `json:"referenceCount"`
	Error          string `json:"error"`
}

// Submit validates the form and sends it as one multipart request. An
// invalid form never touches the network. On success the form is reset, so
// a second confirmation click cannot resubmit the same order.
func (c *Client) Submit(ctx context.Context, form *Form) (*Result, error) {
	if fields := form.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	body, contentType, err := encodeForm(form)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/order", body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var decoded orderResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if resp.StatusCode != http.StatusOK || !decoded.Success {
		message := decoded.Error
		if message == "" {
			message = "Unknown Server Error"
		}
		return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, message)
	}

	form.Reset()

	return &Result{
		ChannelID:      decoded.ChannelID,
		Message:        decoded.Message,
		ReferenceCount: decoded.ReferenceCount,
	}, nil
}

func encodeForm(form *Form) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":          form.Name,
		"discordId":     form.DiscordID,
		"scale":         form.Scale,
		"part":          form.submittedPart(),
		"price":         strconv.Itoa(form.EstimatedPrice()),
		"paymentMethod": form.PaymentMethod,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", name, err)
		}
	}

	if err := writeFile(w, "slip", *form.proof); err != nil {
		return nil, "", err
	}
	for _, ref := range form.references {
		if err := writeFile(w, "references", ref); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, field string, att Attachment) error {
	part, err := w.CreateFormFile(field, att.Name)
	if err != nil {
		return fmt.Errorf("create file part %q: %w", att.Name, err)
	}
	if _, err := part.Write(att.Content); err != nil {
		return fmt.Errorf("write file part %q: %w", att.Name, err)
	}
	return nil
}
