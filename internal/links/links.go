// Package links parses and builds the pseudo-URL deep link schemes embedded
// in analysis reports:
//
//	product://<encoded store>::<encoded product url>
//	category://<encoded source>::<category id>?store_name=...&product_url=...
//
// The "::" separator makes these deliberately not standard URLs, so parsing
// is done by hand rather than with url.Parse. Malformed links yield an error
// and no result; callers log and ignore them.
package links

import (
	"errors"
	"net/url"
	"strings"
)

const (
	productScheme  = "product://"
	categoryScheme = "category://"
)

var (
	ErrUnknownScheme = errors.New("links: unknown scheme")
	ErrMalformed     = errors.New("links: malformed link")
)

// ProductLink points at one product inside one store's snapshot.
type ProductLink struct {
	Store string
	URL   string
}

// CategoryLink points at a category of a named source, optionally narrowed
// to a store and a specific product.
type CategoryLink struct {
	Source     string
	CategoryID string
	StoreName  string
	ProductURL string
}

// ParseProductLink parses a product:// link. A nil result with a non-nil
// error means the link must be ignored, never acted on.
func ParseProductLink(href string) (*ProductLink, error) {
	rest, ok := strings.CutPrefix(href, productScheme)
	if !ok {
		return nil, ErrUnknownScheme
	}
	encStore, encURL, ok := strings.Cut(rest, "::")
	if !ok || encStore == "" || encURL == "" {
		return nil, ErrMalformed
	}
	store, err := url.QueryUnescape(encStore)
	if err != nil {
		return nil, ErrMalformed
	}
	target, err := url.QueryUnescape(encURL)
	if err != nil {
		return nil, ErrMalformed
	}
	return &ProductLink{Store: store, URL: target}, nil
}

// ParseCategoryLink parses a category:// link. The category id is taken
// verbatim; the source and the optional query values are decoded.
func ParseCategoryLink(href string) (*CategoryLink, error) {
	rest, ok := strings.CutPrefix(href, categoryScheme)
	if !ok {
		return nil, ErrUnknownScheme
	}
	pathPart, queryPart, _ := strings.Cut(rest, "?")
	encSource, categoryID, ok := strings.Cut(pathPart, "::")
	if !ok || encSource == "" || categoryID == "" {
		return nil, ErrMalformed
	}
	source, err := url.QueryUnescape(encSource)
	if err != nil {
		return nil, ErrMalformed
	}

	link := &CategoryLink{Source: source, CategoryID: categoryID}
	if queryPart != "" {
		params, err := url.ParseQuery(queryPart)
		if err != nil {
			return nil, ErrMalformed
		}
		// The report generator query-encodes values before embedding them in
		// the query string, so they come out of ParseQuery still escaped once.
		if enc := params.Get("store_name"); enc != "" {
			if link.StoreName, err = url.QueryUnescape(enc); err != nil {
				return nil, ErrMalformed
			}
		}
		if enc := params.Get("product_url"); enc != "" {
			if link.ProductURL, err = url.QueryUnescape(enc); err != nil {
				return nil, ErrMalformed
			}
		}
	}
	return link, nil
}

// BuildProductLink renders a product deep link that round-trips through
// ParseProductLink.
func BuildProductLink(store, productURL string) string {
	return productScheme + url.QueryEscape(store) + "::" + url.QueryEscape(productURL)
}

// BuildCategoryLink renders a category deep link that round-trips through
// ParseCategoryLink.
func BuildCategoryLink(source, categoryID, storeName, productURL string) string {
	href := categoryScheme + url.QueryEscape(source) + "::" + categoryID
	params := url.Values{}
	if storeName != "" {
		params.Set("store_name", url.QueryEscape(storeName))
	}
	if productURL != "" {
		params.Set("product_url", url.QueryEscape(productURL))
	}
	if len(params) > 0 {
		href += "?" + params.Encode()
	}
	return href
}
