// Package goquery implements history extraction from the Takeout HTML
// export using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rcoelho/ythist"
	"golang.org/x/net/html"
)

// Structural markers of the export. The markup contract is external; it is
// scraped as-is, never redefined.
const (
	eventSelector   = "div.outer-cell"
	bodySelector    = "div.content-cell.mdl-typography--body-1"
	captionSelector = "div.content-cell.mdl-typography--caption"

	watchPrefix   = "https://www.youtube.com/watch"
	channelPrefix = "https://www.youtube.com/channel"

	detailsLabel = "Detalhes"
)

// ParseFragment parses the HTML of a single event fragment into a record.
// It returns (nil, nil) when the fragment holds no extractable view: a
// missing body cell or a missing watch link discards the whole fragment,
// while every other lookup failure degrades to an empty field.
//
// A date substring that fails normalization keeps its raw form in the
// record with a nil timestamp; callers can detect that condition from the
// two fields.
func ParseFragment(fragment string) (*ythist.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, ythist.Errorf(ythist.EINVALID, "failed to parse fragment: %v", err)
	}

	body := doc.Find(bodySelector).First()
	if body.Length() == 0 {
		return nil, nil
	}

	anchors := body.Find("a[href]")
	videoIdx := -1
	anchors.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if href, _ := sel.Attr("href"); strings.HasPrefix(href, watchPrefix) {
			videoIdx = i
			return false
		}
		return true
	})
	if videoIdx < 0 {
		return nil, nil
	}

	video := anchors.Eq(videoIdx)
	videoURL, _ := video.Attr("href")
	record := &ythist.Record{
		Title: strings.TrimSpace(video.Text()),
		URL:   videoURL,
	}

	// The channel anchor, when present, follows the video anchor in
	// document order. Searching forward only: an earlier channel anchor
	// belongs to a different element.
	anchors.Slice(videoIdx+1, anchors.Length()).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, channelPrefix) {
			return true
		}
		record.Channel = strings.TrimSpace(sel.Text())
		record.ChannelURL = href
		return false
	})

	// The view date lives in free text next to the video anchor. Text
	// nodes are joined with single spaces so the pattern cannot be broken
	// or forged by adjacent nodes running together.
	if raw := ythist.MatchViewDate(joinedText(video.Parent())); raw != "" {
		record.ViewedAtRaw = raw
		if t, err := ythist.ParseViewDate(raw); err == nil {
			record.ViewedAt = &t
		}
	}

	record.Detail = captionDetail(doc)

	return record, nil
}

// captionDetail extracts the value following the "Detalhes" label in the
// fragment's caption cell, or "" when the cell or label is absent.
func captionDetail(doc *goquery.Document) string {
	caption := doc.Find(captionSelector).First()
	if caption.Length() == 0 || len(caption.Nodes) == 0 {
		return ""
	}

	for child := caption.Nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if !isElement(child, "b") || !strings.HasPrefix(strings.TrimSpace(nodeText(child)), detailsLabel) {
			continue
		}
		// The value is the next sibling after the label, skipping the
		// line break between them.
		for sib := child.NextSibling; sib != nil; sib = sib.NextSibling {
			if isElement(sib, "br") {
				continue
			}
			if text := strings.TrimSpace(nodeText(sib)); text != "" {
				return text
			}
		}
		return ""
	}
	return ""
}

// joinedText returns the visible text of a selection with each text node
// trimmed and the pieces joined by single spaces.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// nodeText returns the concatenated text content of a node.
func nodeText(n *html.Node) string {
	var parts []string
	collectText(n, &parts)
	return strings.Join(parts, " ")
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}
