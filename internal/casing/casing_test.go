package casing

import "testing"

func TestPascal(t *testing.T) {
	cases := map[string]string{
		"MyBucket":     "MyBucket",
		"my_bucket":    "MyBucket",
		"my-bucket":    "MyBucket",
		"HTTPServer":   "HttpServer",
		"VPC":          "Vpc",
		"already":      "Already",
		"S3BucketName": "S3BucketName",
	}
	for in, want := range cases {
		if got := Pascal(in); got != want {
			t.Errorf("Pascal(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamel(t *testing.T) {
	cases := map[string]string{
		"MyBucket":  "myBucket",
		"my_bucket": "myBucket",
		"HTTPPort":  "httpPort",
	}
	for in, want := range cases {
		if got := Camel(in); got != want {
			t.Errorf("Camel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSnake(t *testing.T) {
	cases := map[string]string{
		"MyBucket":  "my_bucket",
		"HTTPPort":  "http_port",
		"my-bucket": "my_bucket",
	}
	for in, want := range cases {
		if got := Snake(in); got != want {
			t.Errorf("Snake(%q) = %q, want %q", in, got, want)
		}
	}
}
