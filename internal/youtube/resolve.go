package youtube

import (
	"context"
	"strings"
)

// ResolveChannelID turns a channel reference into a channel ID. Accepted
// forms are a bare "UC..." ID, a /channel/<id> URL, a /c/<name> or
// /user/<name> URL, and an @handle (bare or inside a URL).
//
// Names and handles are looked up through channel search. Resolution is best
// effort: when the search fails or finds nothing, the trimmed input is
// returned unchanged.
func (c *Client) ResolveChannelID(ctx context.Context, input string) string {
	ref := strings.TrimSpace(input)
	id, query := parseChannelRef(ref)
	if id != "" {
		return id
	}
	if query == "" {
		return ref
	}

	found, err := c.searchChannel(ctx, query)
	if err != nil {
		c.log.Warn().Err(err).Msg("youtube: channel search failed, using input as channel id")
		return ref
	}
	if found == "" {
		c.log.Debug().Msg("youtube: no channel matched, using input as channel id")
		return ref
	}
	return found
}

// parseChannelRef classifies a trimmed reference. It returns the channel ID
// when the reference carries one, otherwise the name to search for. Both are
// empty when the reference has no recognised shape.
func parseChannelRef(ref string) (id, query string) {
	if strings.HasPrefix(ref, "UC") && len(ref) > 10 {
		return ref, ""
	}
	if _, after, ok := strings.Cut(ref, "/channel/"); ok {
		return firstSegment(after), ""
	}

	switch {
	case strings.Contains(ref, "/c/"):
		_, after, _ := strings.Cut(ref, "/c/")
		return "", firstSegment(after)
	case strings.Contains(ref, "/user/"):
		_, after, _ := strings.Cut(ref, "/user/")
		return "", firstSegment(after)
	case strings.Contains(ref, "/@"):
		_, after, _ := strings.Cut(ref, "/@")
		return "", firstSegment(after)
	case strings.Contains(ref, "@"):
		return "", strings.ReplaceAll(ref, "@", "")
	}
	return "", ""
}

// firstSegment returns s up to the next path separator or query string.
func firstSegment(s string) string {
	s, _, _ = strings.Cut(s, "/")
	s, _, _ = strings.Cut(s, "?")
	return s
}
