package platforms

import (
	"strings"
	"testing"

	"colloquy/internal/domain/models/discussion"
)

const sampleCommentFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:dc="http://purl.org/dc/elements/1.1/"
	xmlns:thr="http://purl.org/syndication/thread/1.0">
	<channel>
		<title>Comments on: Error handling patterns</title>
		<link>https://blog.example.com/error-handling</link>
		<description>Recent comments</description>
		<item>
			<guid>comment-1</guid>
			<link>https://blog.example.com/error-handling#comment-1</link>
			<dc:creator>reader1</dc:creator>
			<description>&lt;p&gt;Very &lt;strong&gt;helpful&lt;/strong&gt; post&lt;/p&gt;</description>
			<pubDate>Mon, 06 May 2024 07:08:09 +0000</pubDate>
		</item>
		<item>
			<guid>comment-2</guid>
			<link>https://blog.example.com/error-handling#comment-2</link>
			<dc:creator>reader2</dc:creator>
			<description>I disagree</description>
			<pubDate>Mon, 06 May 2024 09:00:00 +0000</pubDate>
			<thr:in-reply-to ref="comment-1"/>
		</item>
		<item>
			<link>https://blog.example.com/error-handling#comment-3</link>
			<dc:creator>anon</dc:creator>
			<description>no guid on this one</description>
		</item>
	</channel>
</rss>`

func TestParseBlogFeed(t *testing.T) {
	feed, err := ParseBlogFeed([]byte(sampleCommentFeed))
	if err != nil {
		t.Fatalf("ParseBlogFeed: %v", err)
	}
	if feed.Channel.Title != "Comments on: Error handling patterns" {
		t.Errorf("channel title = %q", feed.Channel.Title)
	}
	if len(feed.Channel.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(feed.Channel.Items))
	}
	if feed.Channel.Items[1].InReplyTo == nil || feed.Channel.Items[1].InReplyTo.Ref != "comment-1" {
		t.Errorf("thr:in-reply-to not parsed: %+v", feed.Channel.Items[1].InReplyTo)
	}
}

func TestParseBlogFeed_Invalid(t *testing.T) {
	if _, err := ParseBlogFeed([]byte("not xml at all <<<")); err == nil {
		t.Error("expected error for malformed feed")
	}
}

func TestBlogAdapter_Thread(t *testing.T) {
	a := NewBlogAdapter(testLogger())

	feed, err := ParseBlogFeed([]byte(sampleCommentFeed))
	if err != nil {
		t.Fatalf("ParseBlogFeed: %v", err)
	}

	in, records, err := a.Thread(feed)
	if err != nil {
		t.Fatalf("Thread: %v", err)
	}

	if in.Source != discussion.SourceBlog {
		t.Errorf("source = %q", in.Source)
	}
	if in.ID != "https://blog.example.com/error-handling" {
		t.Errorf("thread id should come from channel link: %q", in.ID)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Author != "reader1" {
		t.Errorf("dc:creator not mapped: %q", first.Author)
	}
	if !strings.Contains(first.Content, "**helpful**") {
		t.Errorf("comment html not converted: %q", first.Content)
	}
	if first.CreatedAt.IsZero() {
		t.Error("pubDate not parsed")
	}

	second := records[1]
	if second.ParentID == nil || *second.ParentID != "comment-1" {
		t.Errorf("in-reply-to not mapped to parent: %+v", second.ParentID)
	}

	third := records[2]
	if third.ID == "" {
		t.Error("missing guid should yield a generated id")
	}
	if third.ID == "comment-1" || third.ID == "comment-2" {
		t.Errorf("generated id collides: %q", third.ID)
	}
}

func TestParsePubDate(t *testing.T) {
	if ts := parsePubDate("Mon, 06 May 2024 07:08:09 +0000"); ts.IsZero() {
		t.Error("RFC1123Z date not parsed")
	}
	if ts := parsePubDate("2024-05-06T07:08:09Z"); ts.IsZero() {
		t.Error("RFC3339 date not parsed")
	}
	if ts := parsePubDate("last tuesday"); !ts.IsZero() {
		t.Errorf("nonsense date parsed: %v", ts)
	}
	if ts := parsePubDate(""); !ts.IsZero() {
		t.Errorf("empty date parsed: %v", ts)
	}
}
