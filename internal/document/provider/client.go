// Package provider talks to the secure upload provider that scans and stores applicant documents.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/cosigner/internal/document"
)

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type errorResponse struct {
	Error struct {
		Type    document.ProviderErrorType `json:"type"`
		Message string                     `json:"message"`
	} `json:"error"`
}

// Upload streams the file to the provider as multipart form data.
func (c *Client) Upload(ctx context.Context, category document.Category, file document.File) (*document.Receipt, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		err := writeForm(form, category, file)
		if err == nil {
			err = form.Close()
		}

		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/uploads", pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", form.FormDataContentType())
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}

	var receipt document.Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("decoding receipt: %w", err)
	}

	if receipt.Handle == "" {
		return nil, &document.ProviderError{
			Type:       document.ProviderGenericFailure,
			Message:    "receipt without handle",
			StatusCode: resp.StatusCode,
		}
	}

	return &receipt, nil
}

func writeForm(form *multipart.Writer, category document.Category, file document.File) error {
	if err := form.WriteField("category", string(category)); err != nil {
		return fmt.Errorf("writing category: %w", err)
	}

	part, err := form.CreateFormFile("file", file.Filename)
	if err != nil {
		return fmt.Errorf("creating file part: %w", err)
	}

	if _, err := io.Copy(part, file.Content); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// Delete removes a stored file. A handle the provider no longer knows is treated as deleted.
func (c *Client) Delete(ctx context.Context, handle string) error {
	endpoint := c.baseURL + "/v1/uploads/" + url.PathEscape(handle)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	}

	return decodeError(resp)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func decodeError(resp *http.Response) error {
	perr := &document.ProviderError{
		Type:       document.ProviderGenericFailure,
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var body errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		if body.Error.Type != "" {
			perr.Type = body.Error.Type
		}

		if body.Error.Message != "" {
			perr.Message = body.Error.Message
		}
	}

	return perr
}
