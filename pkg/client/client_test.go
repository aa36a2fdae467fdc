package client

import (
	"testing"
)

func TestClient_TimeoutOnBothChannels(t *testing.T) {
	// 主通道和兜底通道必须带同一个超时上限，
	// 不然 resty 挂了退到兜底时请求可能永远吊着
	c := New("http://127.0.0.1:1/")

	if got := c.rc.GetClient().Timeout; got != requestTimeout {
		t.Fatalf("主通道超时 = %v, want %v", got, requestTimeout)
	}
	if fallbackHTTP.Timeout != requestTimeout {
		t.Fatalf("兜底通道超时 = %v, want %v", fallbackHTTP.Timeout, requestTimeout)
	}
}

func TestClient_NewTrimsBaseURL(t *testing.T) {
	c := New("http://localhost:8080/")
	if c.baseURL != "http://localhost:8080" {
		t.Fatalf("baseURL 应去掉尾部斜杠，得到 %q", c.baseURL)
	}
}
