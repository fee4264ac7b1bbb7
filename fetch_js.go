package main

import (
	"errors"
	"fmt"
	"net/http"
	"syscall/js"
)

var errFetchNotFound = errors.New("file not found")

// fetchGet downloads a file relative to the page.
// It must not be called from a JS callback goroutine.
func fetchGet(path string) ([]byte, error) {
	var b []byte
	var errored bool
	chErr := make(chan error, 1)

	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		res := args[0]
		if !res.Get("ok").Bool() {
			errored = true
			if res.Get("status").Int() == http.StatusNotFound {
				chErr <- fmt.Errorf("%s: %w", path, errFetchNotFound)
			} else {
				chErr <- fmt.Errorf("failed to fetch %s: %s", path, res.Get("statusText").String())
			}
			return nil
		}
		return res.Call("arrayBuffer")
	})
	defer onResponse.Release()
	onFail := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		errored = true
		chErr <- fmt.Errorf("failed to fetch %s", path)
		return nil
	})
	defer onFail.Release()
	onData := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if errored {
			return nil
		}
		array := js.Global().Get("Uint8Array").New(args[0])
		b = make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		chErr <- nil
		return nil
	})
	defer onData.Release()
	onDataFail := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if !errored {
			chErr <- fmt.Errorf("failed to read %s", path)
		}
		return nil
	})
	defer onDataFail.Release()

	js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "same-origin",
	}).Call("then", onResponse, onFail).Call("then", onData, onDataFail)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return b, nil
}
