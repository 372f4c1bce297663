// Package dev provides live reload for the footer preview.
//
// ConfigHolder keeps the current site configuration and reloads it when the
// file changes on disk. A reload that fails validation leaves the previous
// configuration active. Listeners are told about reloads that change the
// rendered footer (computed with vdom.Diff) and about failures.
//
// ReloadServer pushes those events to preview pages over a WebSocket at
// ReloadPath. Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
//
// # Usage
//
//	holder := dev.NewConfigHolder(cfg)
//	reload := dev.NewReloadServer(logger)
//	holder.Subscribe(func(ev dev.Event) {
//	    if ev.Err != nil {
//	        reload.NotifyError(ev.Err.Error())
//	        return
//	    }
//	    reload.NotifyReload()
//	})
//	if err := holder.StartWatcher(ctx); err != nil {
//	    return err
//	}
package dev
