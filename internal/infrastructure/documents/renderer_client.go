package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"adspace_ops/internal/domain/entities"
	"adspace_ops/internal/usecase/interfaces"
)

var ErrMissingRendererURL = errors.New("missing RENDERER_URL")

const defaultRendererTimeout = 30 * time.Second

// RendererClient calls the external PDF rendering service over HTTP. The
// service receives the document model as JSON and answers with the rendered
// PDF bytes; layout decisions live entirely on the renderer side.
//
// With DOCUMENT_RENDERER_MOCK enabled the client returns a minimal valid PDF
// so document flows can run without the renderer deployed.
type RendererClient struct {
	baseURL  string
	httpc    *http.Client
	mockMode bool
}

var _ interfaces.IDocumentRenderer = (*RendererClient)(nil)

func NewRendererClient(baseURL string) (*RendererClient, error) {
	if isRendererMockEnabled() {
		log.Printf("[document][renderer] mock mode enabled")
		return &RendererClient{mockMode: true}, nil
	}

	if baseURL == "" {
		log.Printf("[document][renderer] missing RENDERER_URL")
		return nil, ErrMissingRendererURL
	}

	return &RendererClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultRendererTimeout},
	}, nil
}

func (c *RendererClient) Render(ctx context.Context, model entities.DocumentModel) ([]byte, error) {
	if c.mockMode {
		log.Printf("[document][renderer] mock render type=%s number=%s", model.Type, model.Number)
		return mockPDF(model), nil
	}

	body, err := json.Marshal(model)
	if err != nil {
		log.Printf("[document][renderer] model marshal failed err=%v", err)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	log.Printf("[document][renderer] render start type=%s number=%s", model.Type, model.Number)
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("[document][renderer] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[document][renderer] render failed status=%d body=%s", resp.StatusCode, string(msg))
		return nil, fmt.Errorf("renderer returned status %d", resp.StatusCode)
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	log.Printf("[document][renderer] render success type=%s number=%s size=%d", model.Type, model.Number, len(pdf))
	return pdf, nil
}

// mockPDF produces the smallest well-formed PDF carrying the document title,
// enough for storage and download flows to be exercised end to end.
func mockPDF(model entities.DocumentModel) []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")
	fmt.Fprintf(&b, "%% %s %s\n", model.Title, model.Number)
	b.WriteString("trailer\n<< /Root 1 0 R >>\n%%EOF\n")
	return b.Bytes()
}

func isRendererMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("DOCUMENT_RENDERER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
