package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode"

	"phonebook-service/internal/core/domain"
)

func printContacts(w io.Writer, contacts []*domain.Contact) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONES")
	for _, c := range contacts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.FullName, c.PhonesString())
	}
	return tw.Flush()
}

func printContact(w io.Writer, c *domain.Contact) {
	fmt.Fprintf(w, "ID:       %s\n", c.ID)
	fmt.Fprintf(w, "Name:     %s\n", c.FullName)
	if len(c.Phones) == 0 {
		fmt.Fprintln(w, "Phones:   none")
	} else {
		fmt.Fprintln(w, "Phones:")
		for _, p := range c.Phones {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	if !c.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created:  %s\n", c.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(w, "Updated:  %s\n", c.UpdatedAt.Format(time.RFC3339))
	}
}

// parsePhoneFlag reads "NUMBER" or "TYPE:NUMBER". A prefix made only of
// letters is a type name and must be a known one.
func parsePhoneFlag(value string) (domain.PhoneNumber, error) {
	phoneType := domain.PhoneTypeMobile
	number := value
	if i := strings.Index(value, ":"); i > 0 && isTypeName(value[:i]) {
		t, ok := domain.LookupPhoneType(value[:i])
		if !ok {
			return domain.PhoneNumber{}, fmt.Errorf("unknown phone type %q in %q", strings.TrimSpace(value[:i]), value)
		}
		phoneType = t
		number = value[i+1:]
	}
	phone := domain.NewPhoneNumber(number, phoneType)
	if phone.Number == "" {
		return domain.PhoneNumber{}, fmt.Errorf("%w: %q", domain.ErrInvalidPhoneNumber, value)
	}
	return phone, nil
}

func isTypeName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func parsePhoneFlags(values []string) ([]domain.PhoneNumber, error) {
	phones := make([]domain.PhoneNumber, 0, len(values))
	for _, v := range values {
		p, err := parsePhoneFlag(v)
		if err != nil {
			return nil, err
		}
		phones = append(phones, p)
	}
	return phones, nil
}

// parseTypeFlag rejects unknown names instead of falling back to mobile.
func parseTypeFlag(value string) (domain.PhoneType, error) {
	if strings.TrimSpace(value) == "" {
		return domain.PhoneTypeMobile, nil
	}
	t, ok := domain.LookupPhoneType(value)
	if !ok {
		return "", fmt.Errorf("unknown phone type %q", value)
	}
	return t, nil
}
