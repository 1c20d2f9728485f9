// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feeds renders the derived public documents: the RSS feed and the
// llms.txt knowledge base. Both are pure functions of content rows so they
// can be cached and rebuilt at will.
package feeds

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"richgradstudent/internal/models"
)

// MaxFeedItems caps the number of posts in the RSS feed.
const MaxFeedItems = 20

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Atom    string     `xml:"xmlns:atom,attr"`
	DC      string     `xml:"xmlns:dc,attr"`
	Media   string     `xml:"xmlns:media,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         cdata     `xml:"title"`
	Link          string    `xml:"link"`
	Description   cdata     `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	AtomLink      atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       cdata         `xml:"title"`
	Link        string        `xml:"link"`
	GUID        rssGUID       `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Creator     cdata         `xml:"dc:creator"`
	Description cdata         `xml:"description"`
	Media       *mediaContent `xml:"media:content,omitempty"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type mediaContent struct {
	URL    string `xml:"url,attr"`
	Medium string `xml:"medium,attr"`
}

type cdata struct {
	Value string `xml:",cdata"`
}

// BuildRSS renders the RSS 2.0 feed for the newest published posts. Posts
// must already be ordered newest-first; only the first MaxFeedItems are
// included.
func BuildRSS(siteURL string, posts []models.Content) ([]byte, error) {
	siteURL = strings.TrimRight(siteURL, "/")
	if len(posts) > MaxFeedItems {
		posts = posts[:MaxFeedItems]
	}

	items := make([]rssItem, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		link := siteURL + p.Path()
		item := rssItem{
			Title:       cdata{Value: p.DisplayTitle()},
			Link:        link,
			GUID:        rssGUID{IsPermaLink: "true", Value: link},
			Description: cdata{Value: p.Summary()},
		}
		if p.AuthorName != nil {
			item.Creator = cdata{Value: *p.AuthorName}
		}
		if p.PublishedAt != nil {
			item.PubDate = p.PublishedAt.UTC().Format(time.RFC1123Z)
		}
		if p.ImageURL != nil && *p.ImageURL != "" {
			item.Media = &mediaContent{URL: *p.ImageURL, Medium: "image"}
		}
		items = append(items, item)
	}

	lastBuild := time.Now().UTC()
	if len(posts) > 0 && posts[0].PublishedAt != nil {
		lastBuild = posts[0].PublishedAt.UTC()
	}

	feed := rssFeed{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		DC:      "http://purl.org/dc/elements/1.1/",
		Media:   "http://search.yahoo.com/mrss/",
		Channel: rssChannel{
			Title:         cdata{Value: "The Rich Grad Student"},
			Link:          siteURL,
			Description:   cdata{Value: "Credit card rewards and points strategy for students and early-career professionals."},
			Language:      "en-us",
			LastBuildDate: lastBuild.Format(time.RFC1123Z),
			AtomLink:      atomLink{Href: siteURL + "/feed.xml", Rel: "self", Type: "application/rss+xml"},
			Items:         items,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, fmt.Errorf("encode rss: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// BuildLLMs renders the llms.txt knowledge base: a plain-text digest of the
// whole site for language-model crawlers.
func BuildLLMs(siteURL string, posts, articles []models.Content, cards []models.CreditCard, programs []models.PointsProgram) []byte {
	siteURL = strings.TrimRight(siteURL, "/")

	var b strings.Builder
	b.WriteString("# The Rich Grad Student\n\n")
	b.WriteString("> Credit card rewards and points strategy for students and early-career professionals.\n")
	b.WriteString("> Independent reviews, spending math, and travel redemption guides.\n\n")

	if len(cards) > 0 {
		b.WriteString("## Credit Cards\n\n")
		for i := range cards {
			c := &cards[i]
			b.WriteString(fmt.Sprintf("- [%s](%s/credit-cards/%s)", c.Name, siteURL, c.Slug))
			if c.Issuer != nil && *c.Issuer != "" {
				b.WriteString(" by " + *c.Issuer)
			}
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("  Annual fee: $%.0f", c.AnnualFee))
			if c.PointsProgram != nil {
				b.WriteString(fmt.Sprintf(", program: %s (%.1f-%.1f cpp)",
					c.PointsProgram.Name, c.PointsProgram.BaseValue, c.PointsProgram.BestRedemption))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(programs) > 0 {
		b.WriteString("## Points Programs\n\n")
		for i := range programs {
			p := &programs[i]
			b.WriteString(fmt.Sprintf("- %s: base %.1f cpp, best redemption %.1f cpp\n",
				p.Name, p.BaseValue, p.BestRedemption))
		}
		b.WriteString("\n")
	}

	writeSection := func(heading string, items []models.Content) {
		if len(items) == 0 {
			return
		}
		b.WriteString("## " + heading + "\n\n")
		for i := range items {
			c := &items[i]
			b.WriteString(fmt.Sprintf("- [%s](%s%s)", c.DisplayTitle(), siteURL, c.Path()))
			if s := c.Summary(); s != "" {
				b.WriteString(": " + s)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	writeSection("Guides", articles)
	writeSection("Blog", posts)

	b.WriteString("## Feeds\n\n")
	b.WriteString(fmt.Sprintf("- [RSS](%s/feed.xml)\n", siteURL))

	return []byte(b.String())
}
