// Package client talks to a running phonebook server over its HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"phonebook-service/internal/adapters/primary/http/dto"
	"phonebook-service/internal/core/domain"
	"phonebook-service/internal/core/ports/output"
)

const (
	apiPrefix = "/api/v1/phonebook"
	pageSize  = 100
)

// knownErrors maps error messages returned by the server back to domain errors.
var knownErrors = []error{
	domain.ErrContactNotFound,
	domain.ErrPhoneNotFound,
	domain.ErrContactNameConflict,
	domain.ErrDuplicatePhone,
	domain.ErrInvalidContactName,
	domain.ErrInvalidContactID,
	domain.ErrInvalidPhoneNumber,
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// List returns one page of contacts and the total number of matches.
func (c *Client) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Contact, int, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.SortBy != "" {
		q.Set("sort_by", filter.SortBy)
	}
	if filter.Order != "" {
		q.Set("order", filter.Order)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}

	var resp dto.ListContactsResponse
	if err := c.do(ctx, http.MethodGet, "/contacts", q, nil, &resp); err != nil {
		return nil, 0, err
	}
	return fromResponses(resp.Items), resp.Total, nil
}

// All pages through every contact in insertion order.
func (c *Client) All(ctx context.Context) ([]*domain.Contact, error) {
	return c.collect(ctx, ports.ListFilter{})
}

func (c *Client) Search(ctx context.Context, query string) ([]*domain.Contact, error) {
	return c.collect(ctx, ports.ListFilter{Search: query})
}

func (c *Client) SortedByName(ctx context.Context) ([]*domain.Contact, error) {
	return c.collect(ctx, ports.ListFilter{SortBy: ports.SortByName})
}

func (c *Client) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	var resp dto.ContactResponse
	if err := c.do(ctx, http.MethodGet, "/contacts/"+id.String(), nil, nil, &resp); err != nil {
		return nil, err
	}
	return dto.FromContactResponse(resp), nil
}

func (c *Client) GetByName(ctx context.Context, name string) (*domain.Contact, error) {
	var resp dto.ContactResponse
	q := url.Values{"name": {name}}
	if err := c.do(ctx, http.MethodGet, "/contact", q, nil, &resp); err != nil {
		return nil, err
	}
	return dto.FromContactResponse(resp), nil
}

func (c *Client) Create(ctx context.Context, fullName string, phones []domain.PhoneNumber) (*domain.Contact, error) {
	req := dto.CreateContactRequest{FullName: fullName, Phones: dto.ToPhoneDTOs(phones)}

	var resp dto.ContactResponse
	if err := c.do(ctx, http.MethodPost, "/contacts", nil, req, &resp); err != nil {
		return nil, err
	}
	return dto.FromContactResponse(resp), nil
}

func (c *Client) Update(ctx context.Context, id uuid.UUID, fullName string, phones []domain.PhoneNumber) (*domain.Contact, error) {
	req := dto.UpdateContactRequest{FullName: fullName, Phones: dto.ToPhoneDTOs(phones)}

	var resp dto.ContactResponse
	if err := c.do(ctx, http.MethodPut, "/contacts/"+id.String(), nil, req, &resp); err != nil {
		return nil, err
	}
	return dto.FromContactResponse(resp), nil
}

func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/contacts/"+id.String(), nil, nil, nil)
}

func (c *Client) AddPhone(ctx context.Context, id uuid.UUID, phone domain.PhoneNumber) (*domain.Contact, error) {
	req := dto.PhoneDTO{Number: phone.Number, Type: string(phone.Type)}

	var resp dto.ContactResponse
	if err := c.do(ctx, http.MethodPost, "/contacts/"+id.String()+"/phones", nil, req, &resp); err != nil {
		return nil, err
	}
	return dto.FromContactResponse(resp), nil
}

func (c *Client) RemovePhone(ctx context.Context, id uuid.UUID, phone domain.PhoneNumber) (*domain.Contact, error) {
	q := url.Values{"number": {phone.Number}, "type": {string(phone.Type)}}

	var resp dto.ContactResponse
	if err := c.do(ctx, http.MethodDelete, "/contacts/"+id.String()+"/phones", q, nil, &resp); err != nil {
		return nil, err
	}
	return dto.FromContactResponse(resp), nil
}

func (c *Client) PhoneTypes(ctx context.Context) ([]dto.PhoneTypeResponse, error) {
	var resp struct {
		Items []dto.PhoneTypeResponse `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/phone_types", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) collect(ctx context.Context, filter ports.ListFilter) ([]*domain.Contact, error) {
	filter.Limit = pageSize
	var out []*domain.Contact
	for {
		page, total, err := c.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		filter.Offset += len(page)
		if len(page) == 0 || filter.Offset >= total {
			break
		}
	}
	if out == nil {
		out = []*domain.Contact{}
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	log.WithFields(log.Fields{
		"method": method,
		"url":    u,
	}).Debug("sending request to phonebook server")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("phonebook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error == "" {
		payload.Error = strings.TrimSpace(string(data))
	}

	for _, known := range knownErrors {
		if payload.Error == known.Error() {
			return known
		}
	}
	if payload.Error == "" {
		payload.Error = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("phonebook server returned %d: %w", resp.StatusCode, errors.New(payload.Error))
}

func fromResponses(items []dto.ContactResponse) []*domain.Contact {
	out := make([]*domain.Contact, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromContactResponse(item))
	}
	return out
}
