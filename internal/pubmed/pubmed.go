// Copyright 2025 The Figtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pubmed retrieves per-year publication counts from the
// PubMed search index.
//
// PubMed exposes no per-query count API, so the count is scraped from
// the result-summary element of the search results page. The page
// structure is an external contract we do not own: if the request
// fails or the marker is missing, FetchCount reports 0. The figures
// built on these counts treat "no results" and "no marker" the same
// way, and reproducing them depends on keeping that fallback.
package pubmed

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// DefaultBaseURL is the public PubMed search endpoint.
const DefaultBaseURL = "https://pubmed.ncbi.nlm.nih.gov"

// A Topic is a named concept with the synonym strings used to match
// it in titles and abstracts. Topics are fixed at configuration time.
type Topic struct {
	Name  string
	Terms []string
}

// The topics tracked in the citation-trend figure. The synonym lists
// are part of the figure's definition; editing them changes the
// published counts.
var (
	MultiOmics = Topic{
		Name:  "Multi-Omics",
		Terms: []string{"multiomics", "multi-omics", "Multiomics", "Multi-omics"},
	}
	PersonalizedMedicine = Topic{
		Name:  "Personalized Medicine",
		Terms: []string{"personalized-medicine", "precision-medicine", "personalized medicine", "precision medicine"},
	}
	GxE = Topic{
		Name:  "GxE Interaction",
		Terms: []string{"gene-environment interaction", "gene-environment correlation", "GxE interaction", "GxE"},
	}
)

// A CountSource reports the number of publications matching a topic
// in a given year.
type CountSource interface {
	FetchCount(year int, topic Topic) int
}

// A Client fetches publication counts from a PubMed-style search
// index. An empty BaseURL means DefaultBaseURL; a nil HTTPClient
// means http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Query returns the search expression for topic restricted to year:
// every synonym ORed together in the title/abstract field plus a
// publication-date filter.
func Query(year int, topic Topic) string {
	return fmt.Sprintf("(%s)[Title/Abstract] AND %d[Date - Publication]",
		strings.Join(topic.Terms, " OR "), year)
}

// FetchCount issues one search request and returns the result count
// shown on the page. It returns 0 if the request fails, the result
// marker is absent, or the count does not parse. There are no
// retries and each call is independent of every other call.
func (c *Client) FetchCount(year int, topic Topic) int {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(base + "/?term=" + url.QueryEscape(Query(year, topic)))
	if err != nil {
		return 0
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return 0
	}
	return resultCount(doc)
}

// resultCount extracts the leading integer from the first span inside
// the page's results-amount element, e.g. "1,234 results". Missing
// structure or a malformed number yields 0.
func resultCount(doc *html.Node) int {
	amount := findByClass(doc, "results-amount")
	if amount == nil {
		return 0
	}
	span := findElement(amount, "span")
	if span == nil {
		return 0
	}
	fields := strings.Fields(nodeText(span))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(fields[0], ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key != "class" {
				continue
			}
			for _, f := range strings.Fields(a.Val) {
				if f == class {
					return n
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := findByClass(c, class); m != nil {
			return m
		}
	}
	return nil
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := findElement(c, name); m != nil {
			return m
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
