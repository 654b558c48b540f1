package platforms

import (
	"encoding/json"
	"strings"
	"testing"

	"colloquy/internal/domain/models/discussion"
)

func redditThing(c RedditComment) RedditThing {
	return RedditThing{Kind: "t1", Data: c}
}

func rawListing(t *testing.T, listing RedditListing) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(listing)
	if err != nil {
		t.Fatalf("marshal listing: %v", err)
	}
	return data
}

func TestRedditAdapter_Thread(t *testing.T) {
	a := NewRedditAdapter(testLogger())

	nested := RedditListing{
		Kind: "Listing",
		Data: RedditListingData{Children: []RedditThing{
			redditThing(RedditComment{
				ID:         "reply1",
				ParentID:   "t1_top1",
				Author:     "replier",
				Body:       "nested reply",
				CreatedUTC: 1714979400,
				Score:      2,
			}),
		}},
	}
	listing := &RedditListing{
		Kind: "Listing",
		Data: RedditListingData{Children: []RedditThing{
			redditThing(RedditComment{
				ID:         "top1",
				ParentID:   "t3_post1",
				Author:     "commenter",
				Body:       "top level",
				CreatedUTC: 1714979289,
				Score:      15,
				Permalink:  "/r/golang/comments/post1/top1/",
				Replies:    rawListing(t, nested),
			}),
			{Kind: "more"}, // pagination stub, no comment data
		}},
	}
	post := &RedditPost{
		ID:         "post1",
		Title:      "Interesting post",
		SelfText:   "post body",
		Author:     "op",
		CreatedUTC: 1714979000,
		Permalink:  "/r/golang/comments/post1/",
		Subreddit:  "r/golang",
		Score:      120,
	}

	in, records, err := a.Thread(post, listing)
	if err != nil {
		t.Fatalf("Thread: %v", err)
	}

	if in.Source != discussion.SourceReddit {
		t.Errorf("source = %q", in.Source)
	}
	if in.URL == nil || *in.URL != "https://www.reddit.com/r/golang/comments/post1/" {
		t.Errorf("post url wrong: %+v", in.URL)
	}
	if in.CreatedAt.Unix() != 1714979000 {
		t.Errorf("created_utc not converted: %v", in.CreatedAt)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 flattened records, got %d", len(records))
	}
	top := records[0]
	if top.ParentID != nil {
		t.Errorf("t3_ parent should mean top level, got %+v", top.ParentID)
	}
	if top.Score == nil || *top.Score != 15 {
		t.Errorf("score not mapped: %+v", top.Score)
	}
	reply := records[1]
	if reply.ParentID == nil || *reply.ParentID != "top1" {
		t.Errorf("t1_ prefix not stripped: %+v", reply.ParentID)
	}
}

func TestRedditAdapter_EmptyRepliesString(t *testing.T) {
	a := NewRedditAdapter(testLogger())

	listing := &RedditListing{
		Data: RedditListingData{Children: []RedditThing{
			redditThing(RedditComment{
				ID:       "solo",
				ParentID: "t3_post1",
				Author:   "commenter",
				Body:     "no replies",
				Replies:  json.RawMessage(`""`), // Reddit's empty-replies encoding
			}),
		}},
	}

	_, records, err := a.Thread(&RedditPost{ID: "post1", Title: "t"}, listing)
	if err != nil {
		t.Fatalf("Thread: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestRedditAdapter_BodyHTMLFallback(t *testing.T) {
	a := NewRedditAdapter(testLogger())

	listing := &RedditListing{
		Data: RedditListingData{Children: []RedditThing{
			redditThing(RedditComment{
				ID:       "html1",
				ParentID: "t3_post1",
				Author:   "commenter",
				BodyHTML: "<p>hello <strong>world</strong></p>",
			}),
		}},
	}

	_, records, err := a.Thread(&RedditPost{ID: "post1", Title: "t"}, listing)
	if err != nil {
		t.Fatalf("Thread: %v", err)
	}
	if !strings.Contains(records[0].Content, "**world**") {
		t.Errorf("body_html not converted: %q", records[0].Content)
	}
}

func TestRedditParent(t *testing.T) {
	if p := redditParent("t3_post"); p != nil {
		t.Errorf("t3_ should be top level, got %q", *p)
	}
	if p := redditParent("t1_abc"); p == nil || *p != "abc" {
		t.Errorf("t1_abc not stripped: %v", p)
	}
	if p := redditParent(""); p != nil {
		t.Errorf("empty fullname should be top level, got %q", *p)
	}
	// Unknown prefixes pass through and degrade to orphans downstream.
	if p := redditParent("t5_weird"); p == nil || *p != "t5_weird" {
		t.Errorf("unknown prefix altered: %v", p)
	}
}
