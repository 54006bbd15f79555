package contracts

import "net/http"

type SheetBroadcaster interface {
	BroadcastSheet(sheet *Sheet)
	BroadcastSheets(sheets []*Sheet)
	ServeWs(w http.ResponseWriter, r *http.Request)
}
