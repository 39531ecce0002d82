package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	jh := JobsHandler{DB: d.DB, Hub: d.Hub, Schema: d.Schema, Build: d.Build, CfgVal: d.CfgVal}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  jh.List,
		http.MethodPost: jh.Create,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: jh.DeleteByPath, // expects /jobs/{id}
	}))

	eh := ExportHandler{DB: d.DB, Schema: d.Schema}
	mux.HandleFunc("/jobs.csv", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ExportCSV,
	}))

	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))

	mux.HandleFunc("/events", EventsHandler{Hub: d.Hub}.ServeSSE)
	mux.HandleFunc("/health", HealthHandler{}.Health)

	return mux
}
