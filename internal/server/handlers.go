package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"everafter/internal/domain"
)

// PackageView is a catalog entry as listed by GET /api/packages.
type PackageView struct {
	domain.Package
	DisplayPrice    string `json:"displayPrice"`
	DisplayRetainer string `json:"displayRetainer"`
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

// decode reads a JSON body into v. Unknown fields are ignored.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.Validationf(err, "Request body is too large.")
		}
		return domain.Validationf(err, "Invalid request body.")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePackages(w http.ResponseWriter, r *http.Request) {
	pkgs := s.svc.Packages()
	out := make([]PackageView, 0, len(pkgs))
	for _, p := range pkgs {
		v := PackageView{
			Package:         p,
			DisplayPrice:    p.Price.String(),
			DisplayRetainer: p.Retainer.String(),
		}
		if s.desc != nil {
			html, err := s.desc.DescriptionHTML(p)
			if err != nil {
				s.logger(r.Context()).Warn("render description", "package", p.ID, "err", err)
			}
			v.DescriptionHTML = html
		}
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateIntent(w http.ResponseWriter, r *http.Request) {
	var req domain.IntentRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	resp, err := s.svc.CreatePaymentIntent(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.ConfirmRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	resp, err := s.svc.ConfirmPayment(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitContract(w http.ResponseWriter, r *http.Request) {
	var sub domain.ContractSubmission
	if err := s.decode(w, r, &sub); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.SubmitContract(r.Context(), sub); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.SubmitResponse{Success: true})
}
