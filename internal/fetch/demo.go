package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotJSON 200 响应的 body 不是合法 JSON
var ErrNotJSON = errors.New("响应体不是合法 JSON")

// RunDemo 请求一次并输出：200 原样打印 JSON 响应体，其它状态码打印失败信息
func RunDemo(ctx context.Context, f *Fetcher, w io.Writer) error {
	result, err := f.Fetch(ctx)
	if err != nil {
		return err
	}

	if !result.OK() {
		fmt.Fprintf(w, "Failed to retrieve data: %d\n", result.StatusCode)
		return nil
	}

	if !json.Valid(result.Body) {
		return ErrNotJSON
	}
	if _, err := w.Write(result.Body); err != nil {
		return err
	}
	if !bytes.HasSuffix(result.Body, []byte("\n")) {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
