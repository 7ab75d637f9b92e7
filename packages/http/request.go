package http

import "time"

type Request struct {
	Method         string
	URL            string
	Headers        map[string]string
	Body           string
	ContentType    string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body, contentType string) *Request {
	r.Body = body
	r.ContentType = contentType
	return r
}

func (r *Request) SetTimeouts(connect, read time.Duration) *Request {
	r.ConnectTimeout = connect
	r.ReadTimeout = read
	return r
}

func (r *Request) HasBody() bool {
	return r.Body != ""
}
