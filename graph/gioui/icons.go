package gioui

import (
	"log"

	"gioui.org/widget"
)

// decoded icons, keyed by the address of the IconVG data so each icon from
// the materialdesign set is decoded only once
var iconCache = map[*byte]*widget.Icon{}

func widgetForIcon(icon []byte) *widget.Icon {
	if w, ok := iconCache[&icon[0]]; ok {
		return w
	}
	w, err := widget.NewIcon(icon)
	if err != nil {
		log.Fatal(err)
	}
	iconCache[&icon[0]] = w
	return w
}
