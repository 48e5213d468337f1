//go:build js && wasm

// Command widget is the browser build of the staff review widget. It reads
// globalThis.srwConfig, mounts into the configured container and keeps the
// Go runtime alive for event callbacks.
package main

import (
	"context"
	"net/http"
	"strconv"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/betona1/cafe24-staff-review/internal/platform/config"
	"github.com/betona1/cafe24-staff-review/internal/platform/observability"
	"github.com/betona1/cafe24-staff-review/internal/widget/client"
	"github.com/betona1/cafe24-staff-review/internal/widget/controller"
	"github.com/betona1/cafe24-staff-review/internal/widget/dom"
	"github.com/betona1/cafe24-staff-review/internal/widget/dom/jsdom"
)

func main() {
	cfg, err := config.WidgetFromLookup(lookup(js.Global().Get("srwConfig")))
	if err != nil {
		js.Global().Get("console").Call("error", "staff review widget: "+err.Error())
		return
	}

	logger, err := observability.NewConsoleLogger(cfg.LogLevel)
	if err != nil {
		logger = zap.NewNop()
	}

	api, err := client.New(cfg.ServerBaseURL, http.DefaultClient)
	if err != nil {
		logger.Error("invalid server url", zap.Error(err))
		return
	}

	doc := jsdom.Global()
	ctrl := controller.New(doc, api, controller.Options{
		ContainerID:      cfg.ContainerID,
		ServerBaseURL:    cfg.ServerBaseURL,
		DefaultProductID: cfg.ProductID,
		PerPage:          cfg.PerPage,
		Logger:           logger,
	})

	ctx := context.Background()
	if js.Global().Get("document").Get("readyState").String() == "loading" {
		var off func()
		off = doc.On("DOMContentLoaded", func(dom.Event) {
			go func() {
				off()
				ctrl.Initialize(ctx)
			}()
		})
	} else {
		ctrl.Initialize(ctx)
	}

	select {}
}

// lookup reads keys from the srwConfig object. Numbers are accepted for
// numeric settings.
func lookup(obj js.Value) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if obj.IsUndefined() || obj.IsNull() {
			return "", false
		}
		v := obj.Get(key)
		switch v.Type() {
		case js.TypeString:
			return v.String(), true
		case js.TypeNumber:
			return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
		default:
			return "", false
		}
	}
}
