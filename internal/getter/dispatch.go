package getter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Pauses applied to the whole pipeline after throttling responses. The
// rate limit is service-wide, so the pause deliberately stalls every
// sub-batch of this getter, not just the one that failed.
const (
	forbiddenPause    = 300 * time.Second
	timeoutPause      = 60 * time.Second
	gatewayPause      = 10 * time.Second
	defaultResetPause = 60 * time.Second
)

// rateLimitResetHeader advertises, on a 429 response, how many seconds
// remain until the rate-limit window resets.
const rateLimitResetHeader = "X-RateLimit-Reset"

// dispatch partitions the window's identifiers into ordered sub-batches
// within the endpoint's per-call limit and issues one POST per
// sub-batch. Every pending request is signaled exactly once.
func (g *Getter[T]) dispatch(window *registry[T]) {
	ids := window.ids()
	max := g.endpoint.MaxBatchSize()
	for start := 0; start < len(ids); start += max {
		end := start + max
		if end > len(ids) {
			end = len(ids)
		}
		g.dispatchSubBatch(window, ids[start:end])
	}
}

func (g *Getter[T]) dispatchSubBatch(window *registry[T], ids []string) {
	encoded, err := json.Marshal(ids)
	if err != nil {
		g.failTransport(window, ids, err)
		return
	}
	payload := strings.Replace(g.endpoint.PayloadTemplate(), PayloadMarker, string(encoded), 1)

	req, err := http.NewRequest(http.MethodPost, g.baseURL+g.endpoint.URLSuffix(), strings.NewReader(payload))
	if err != nil {
		g.failTransport(window, ids, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn().Err(err).Int("identifiers", len(ids)).Msg("post failed")
		g.failTransport(window, ids, err)
		return
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		g.failTransport(window, ids, err)
		return
	}

	switch resp.StatusCode {
	case http.StatusOK:
		g.deliverParsed(window, ids, body)
	case http.StatusBadRequest:
		g.failStatus(window, ids, resp.StatusCode, "bad request: "+string(body), 0)
	case http.StatusForbidden:
		g.failStatus(window, ids, resp.StatusCode, "forbidden", forbiddenPause)
	case http.StatusNotFound:
		g.failStatus(window, ids, resp.StatusCode, "not found", 0)
	case http.StatusRequestTimeout:
		g.failStatus(window, ids, resp.StatusCode, "request timeout", timeoutPause)
	case http.StatusTooManyRequests:
		reset := rateLimitReset(resp.Header)
		msg := fmt.Sprintf("rate limited, reset in %ds", int(reset/time.Second))
		g.failStatus(window, ids, resp.StatusCode, msg, reset)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		g.failStatus(window, ids, resp.StatusCode, "upstream unavailable", gatewayPause)
	default:
		msg := fmt.Sprintf("unexpected status: %s", snippet(body))
		g.failStatus(window, ids, resp.StatusCode, msg, 0)
	}
}

// deliverParsed decodes a 200 body, which may arrive either as a list
// of items or as an object keyed by identifier, and routes each item to
// its waiter. Identifiers the service silently dropped fail with a
// NoResultError.
func (g *Getter[T]) deliverParsed(window *registry[T], ids []string, body []byte) {
	items, err := decodeItems[T](body)
	if err != nil {
		var svc *ServiceError
		if errors.As(err, &svc) {
			g.logger.Warn().
				Str("error", svc.Message).
				Int("identifiers", len(ids)).
				Msg("service rejected sub-batch")
		} else {
			g.logger.Error().Err(err).Msg("unparseable response body")
		}
		for _, id := range ids {
			window.deliver(id, result[T]{err: err})
		}
		return
	}

	for i := range items {
		item := items[i]
		key := g.endpoint.Key(&item)
		if !window.deliver(key, result[T]{item: item}) {
			g.logger.Warn().Str("id", key).Msg("result for unknown identifier")
		}
	}

	for _, id := range ids {
		window.deliver(id, result[T]{err: &NoResultError{ID: id}})
	}
}

// decodeItems probes the first JSON token to pick the list or
// keyed-object shape instead of inspecting decode error text. A
// top-level object with a single "error" field is a service-level
// rejection of the whole sub-batch.
func decodeItems[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &ParseError{Err: errors.New("empty body")}
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &ParseError{Err: err, Body: snippet(body)}
		}
		return items, nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, &ParseError{Err: err, Body: snippet(body)}
		}
		if raw, ok := probe["error"]; ok && len(probe) == 1 {
			var msg string
			if err := json.Unmarshal(raw, &msg); err != nil {
				msg = string(raw)
			}
			return nil, &ServiceError{Message: msg}
		}
		var keyed map[string]T
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, &ParseError{Err: err, Body: snippet(body)}
		}
		items := make([]T, 0, len(keyed))
		for _, item := range keyed {
			items = append(items, item)
		}
		return items, nil
	default:
		return nil, &ParseError{
			Err:  fmt.Errorf("unexpected leading byte %q", trimmed[0]),
			Body: snippet(body),
		}
	}
}

// failStatus fails every identifier of the sub-batch with the same
// status classification, then applies the pipeline pause if any.
func (g *Getter[T]) failStatus(window *registry[T], ids []string, status int, message string, pause time.Duration) {
	for _, id := range ids {
		window.deliver(id, result[T]{err: &StatusError{Status: status, ID: id, Message: message}})
	}
	if pause > 0 {
		g.logger.Warn().
			Int("status", status).
			Dur("pause", pause).
			Int("identifiers", len(ids)).
			Msg("throttled by upstream, pausing pipeline")
		g.sleep(pause)
	}
}

func (g *Getter[T]) failTransport(window *registry[T], ids []string, err error) {
	for _, id := range ids {
		window.deliver(id, result[T]{err: &TransportError{ID: id, Err: err}})
	}
}

func rateLimitReset(h http.Header) time.Duration {
	v := strings.TrimSpace(h.Get(rateLimitResetHeader))
	if v == "" {
		return defaultResetPause
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return defaultResetPause
	}
	return time.Duration(secs) * time.Second
}

func snippet(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
