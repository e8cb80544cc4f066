// File path: internal/storage/oss_test.go
package storage

import "testing"

func TestNormalizeEndpoint(t *testing.T) {
	cases := []struct {
		endpoint   string
		disableSSL bool
		want       string
		wantErr    bool
	}{
		{endpoint: "oss-cn-hangzhou.aliyuncs.com", want: "https://oss-cn-hangzhou.aliyuncs.com"},
		{endpoint: "oss-cn-hangzhou.aliyuncs.com", disableSSL: true, want: "http://oss-cn-hangzhou.aliyuncs.com"},
		{endpoint: "https://minio.internal:9000", want: "https://minio.internal:9000"},
		{endpoint: "http://localhost:9000", want: "http://localhost:9000"},
		{endpoint: "minio.internal:9000/", want: "https://minio.internal:9000"},
		{endpoint: "", wantErr: true},
		{endpoint: "   ", wantErr: true},
	}
	for _, tc := range cases {
		got, err := normalizeEndpoint(tc.endpoint, tc.disableSSL)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("normalizeEndpoint(%q) expected error", tc.endpoint)
			}
			continue
		}
		if err != nil {
			t.Fatalf("normalizeEndpoint(%q): %v", tc.endpoint, err)
		}
		if got != tc.want {
			t.Fatalf("normalizeEndpoint(%q) = %q, want %q", tc.endpoint, got, tc.want)
		}
	}
}

func TestNewOSSStoreRequiresBucket(t *testing.T) {
	if _, err := NewOSSStore(OSSConfig{Endpoint: "oss-cn-hangzhou.aliyuncs.com"}); err == nil {
		t.Fatal("expected error for missing bucket")
	}
}
