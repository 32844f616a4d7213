package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Tag names usable in Config.Tags
const (
	TagPid       = "pid"
	TagStatus    = "status"
	TagLatency   = "latency"
	TagMethod    = "method"
	TagPath      = "path"
	TagIP        = "ip"
	TagUserAgent = "user_agent"
	TagBody      = "body"
	TagResBody   = "res_body"
	RequestID    = "request_id"
)

// FuncTag resolves one tag value for the current request
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag)
	for _, tag := range cfg.Tags {
		switch tag {
		case TagPid:
			ftm[TagPid] = func(c *fiber.Ctx, d *data) interface{} {
				return d.pid
			}
		case TagStatus:
			ftm[TagStatus] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Response().StatusCode()
			}
		case TagLatency:
			ftm[TagLatency] = func(c *fiber.Ctx, d *data) interface{} {
				return d.end.Sub(d.start).String()
			}
		case TagMethod:
			ftm[TagMethod] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Method()
			}
		case TagPath:
			ftm[TagPath] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Path()
			}
		case TagIP:
			ftm[TagIP] = func(c *fiber.Ctx, d *data) interface{} {
				return c.IP()
			}
		case TagUserAgent:
			ftm[TagUserAgent] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Get(fiber.HeaderUserAgent)
			}
		case TagBody:
			ftm[TagBody] = func(c *fiber.Ctx, d *data) interface{} {
				return string(c.Body())
			}
		case TagResBody:
			ftm[TagResBody] = func(c *fiber.Ctx, d *data) interface{} {
				return string(c.Response().Body())
			}
		case RequestID:
			ftm[RequestID] = func(c *fiber.Ctx, d *data) interface{} {
				return c.GetRespHeader(fiber.HeaderXRequestID)
			}
		}
	}
	return ftm
}
