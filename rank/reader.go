package rank

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxLineSize bounds the length of a single query's line of ranks.
const maxLineSize = 64 * 1024 * 1024

// ReadLists reads rank lists in a plain text format: one query per line, with
// the ranks separated by whitespace or commas. A blank line is a query with no
// ranks, and lines starting with # are comments.
func ReadLists(r io.Reader) ([]List, error) {
	var lists []List
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		values := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			values[i] = v
		}
		l, err := FromInts(values...)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		lists = append(lists, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading rank lists")
	}
	return lists, nil
}

// ReadJSONLists reads rank lists encoded as a JSON array of integer arrays.
func ReadJSONLists(r io.Reader) ([]List, error) {
	var raw [][]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding rank lists")
	}
	lists := make([]List, len(raw))
	for i, values := range raw {
		l, err := FromInts(values...)
		if err != nil {
			return nil, errors.Wrapf(err, "query %d", i)
		}
		lists[i] = l
	}
	return lists, nil
}

// MarshalJSON encodes the list with -1 for unseen ranks.
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Ints())
}

// UnmarshalJSON decodes a list from an array of integers.
func (l *List) UnmarshalJSON(b []byte) error {
	var values []int
	if err := json.Unmarshal(b, &values); err != nil {
		return err
	}
	decoded, err := FromInts(values...)
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}
