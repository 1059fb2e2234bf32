// Package metrics records render metrics for trackdeck.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default and does nothing; PrometheusRecorder collects into a
// prometheus.Registry that can be written to a node_exporter textfile with
// WriteTextfile, which suits a CLI that exits after each render.
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	err := pkg.Render(out, slides.RenderOptions{Recorder: rec})
//	_ = metrics.WriteTextfile("trackdeck.prom", reg)
package metrics
