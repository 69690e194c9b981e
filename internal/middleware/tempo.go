package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"
)

const limiteLento = 1 * time.Second

type tempoWriter struct {
	http.ResponseWriter
	inicio        time.Time
	headerEnviado bool
}

func (tw *tempoWriter) WriteHeader(status int) {
	tw.setHeader()
	tw.ResponseWriter.WriteHeader(status)
}

func (tw *tempoWriter) Write(b []byte) (int, error) {
	tw.setHeader()
	return tw.ResponseWriter.Write(b)
}

func (tw *tempoWriter) setHeader() {
	if tw.headerEnviado {
		return
	}
	tw.headerEnviado = true
	duracao := time.Since(tw.inicio)
	tw.Header().Set("X-Response-Time", fmt.Sprintf("%.3fs", duracao.Seconds()))
}

// TempoDeResposta anexa X-Response-Time a toda resposta e loga como
// alerta requisições que demoram mais de 1 segundo.
func TempoDeResposta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inicio := time.Now()
		tw := &tempoWriter{ResponseWriter: w, inicio: inicio}
		next.ServeHTTP(tw, r)

		if duracao := time.Since(inicio); duracao > limiteLento {
			log.Printf("Requisição lenta: %s %s - %.2fs", r.Method, r.URL.Path, duracao.Seconds())
		}
	})
}
