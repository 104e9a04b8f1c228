package server

import "net/http"

// NewRouter регистрирует API эндпоинты сервера
func NewRouter(s *Server) http.Handler {
	mux := http.NewServeMux()

	// синхронные вычисления
	mux.HandleFunc("/solve", s.Solve)
	mux.HandleFunc("/sweep", s.Sweep)

	// фоновые запуски
	mux.HandleFunc("/start", s.StartRun)
	mux.HandleFunc("/stop", s.StopRun)
	mux.HandleFunc("/status", s.RunStatus)
	mux.HandleFunc("/stream", s.Stream)
	mux.HandleFunc("/export", s.ExportCSV)

	return mux
}
