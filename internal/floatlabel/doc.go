// Package floatlabel derives the animated state of a floating input label.
//
// A Controller owns three channels: focus progress, shake offset and the
// measured container height. It reacts to discrete events (focus, blur, value
// presence, error flags, layout) and exposes the label translation, font size
// and shake offset as pure functions of those channels, evaluated whenever
// Sample is called. Nothing derived is cached, so a relayout or a theme change
// is reflected on the very next sample.
//
// Controllers are not safe for concurrent use. Hosts deliver events from a
// single goroutine, the way bubbletea delivers messages to Update.
package floatlabel
