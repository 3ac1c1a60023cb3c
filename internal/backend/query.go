package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type filter struct {
	field string
	op    string
	value string
}

// Query builds a single PostgREST request: an ordered list of conjunctive
// filters plus optional ordering and a row range. Queries are single-use.
type Query struct {
	c          *Client
	table      string
	selectCols string
	filters    []filter
	orExpr     string
	orderBy    string
	ascending  bool
	hasOrder   bool
	rangeFrom  int
	rangeTo    int
	hasRange   bool
}

// Select sets the column projection (default "*"). Nested-select expressions
// such as "*,prospects(id,name)" are passed through to the backend verbatim.
func (q *Query) Select(cols string) *Query {
	q.selectCols = cols
	return q
}

// Eq adds an equality filter.
func (q *Query) Eq(field string, value any) *Query {
	return q.Filter(field, "eq", fmt.Sprintf("%v", value))
}

// Filter adds a comparison filter with an explicit PostgREST operator
// (eq, gt, gte, lt, lte, is, ilike, ...).
func (q *Query) Filter(field, op, value string) *Query {
	q.filters = append(q.filters, filter{field: field, op: op, value: value})
	return q
}

// In adds a set-membership filter.
func (q *Query) In(field string, values []string) *Query {
	return q.Filter(field, "in", "("+strings.Join(values, ",")+")")
}

// NotIn adds a set-exclusion filter.
func (q *Query) NotIn(field string, values []string) *Query {
	return q.Filter(field, "not.in", "("+strings.Join(values, ",")+")")
}

// Or sets a disjunctive filter expression, e.g.
// "name.ilike.*smith*,email.ilike.*smith*". It is combined conjunctively
// with the other filters.
func (q *Query) Or(expr string) *Query {
	q.orExpr = expr
	return q
}

// Order sets the ordering key and direction.
func (q *Query) Order(field string, ascending bool) *Query {
	q.orderBy = field
	q.ascending = ascending
	q.hasOrder = true
	return q
}

// Range restricts the response to rows [from, to] inclusive.
func (q *Query) Range(from, to int) *Query {
	q.rangeFrom = from
	q.rangeTo = to
	q.hasRange = true
	return q
}

// Do executes the select and decodes the rows into dest.
func (q *Query) Do(ctx context.Context, dest any) error {
	req, err := q.request(ctx, http.MethodGet, nil)
	if err != nil {
		return err
	}
	body, _, err := q.c.do(req)
	if err != nil {
		return err
	}
	return decodeInto(body, dest)
}

// Single executes the select expecting exactly one row. The backend answers
// 406 when no row matches, which IsNotFound recognizes.
func (q *Query) Single(ctx context.Context, dest any) error {
	req, err := q.request(ctx, http.MethodGet, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	body, _, err := q.c.do(req)
	if err != nil {
		return err
	}
	return decodeInto(body, dest)
}

// Count executes a head-only select and returns the exact row count from
// the Content-Range header. No row data crosses the wire.
func (q *Query) Count(ctx context.Context) (int, error) {
	req, err := q.request(ctx, http.MethodHead, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")
	_, headers, err := q.c.do(req)
	if err != nil {
		return 0, err
	}
	return parseContentRangeCount(headers.Get("Content-Range"))
}

// Insert posts one or more records and decodes the created rows into dest
// (pass nil to discard them).
func (q *Query) Insert(ctx context.Context, records any, dest any) error {
	return q.write(ctx, http.MethodPost, records, dest)
}

// Update patches the rows matched by the filters and decodes the updated
// rows into dest (pass nil to discard them).
func (q *Query) Update(ctx context.Context, fields any, dest any) error {
	return q.write(ctx, http.MethodPatch, fields, dest)
}

// Delete removes the rows matched by the filters.
func (q *Query) Delete(ctx context.Context) error {
	req, err := q.request(ctx, http.MethodDelete, nil)
	if err != nil {
		return err
	}
	_, _, err = q.c.do(req)
	return err
}

func (q *Query) write(ctx context.Context, method string, body any, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Message: fmt.Sprintf("encode %s body: %v", strings.ToLower(method), err)}
	}
	req, err := q.request(ctx, method, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	respBody, _, err := q.c.do(req)
	if err != nil {
		return err
	}
	return decodeInto(respBody, dest)
}

func (q *Query) request(ctx context.Context, method string, body *bytes.Reader) (*http.Request, error) {
	params := url.Values{}
	params.Set("select", q.selectCols)
	for _, f := range q.filters {
		params.Add(f.field, f.op+"."+f.value)
	}
	if q.orExpr != "" {
		params.Set("or", "("+q.orExpr+")")
	}
	if q.hasOrder {
		dir := "desc"
		if q.ascending {
			dir = "asc"
		}
		params.Set("order", q.orderBy+"."+dir)
	}

	u := q.c.baseURL + "/rest/v1/" + q.table + "?" + params.Encode()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	if q.hasRange {
		req.Header.Set("Range-Unit", "items")
		req.Header.Set("Range", strconv.Itoa(q.rangeFrom)+"-"+strconv.Itoa(q.rangeTo))
	}
	q.c.setAuthHeaders(ctx, req)
	return req, nil
}

func decodeInto(body json.RawMessage, dest any) error {
	if dest == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &Error{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// parseContentRangeCount extracts the total from a "0-24/57" style header.
func parseContentRangeCount(header string) (int, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 || idx == len(header)-1 {
		return 0, &Error{Message: fmt.Sprintf("missing count in Content-Range %q", header)}
	}
	total := header[idx+1:]
	if total == "*" {
		return 0, &Error{Message: "backend did not return an exact count"}
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, &Error{Message: fmt.Sprintf("parse Content-Range %q: %v", header, err)}
	}
	return n, nil
}
