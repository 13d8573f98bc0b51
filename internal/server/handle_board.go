package server

import (
	"net/http"
)

type BoardSizeRequest struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CellContentRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func handleResizeBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BoardSizeRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		ok := sess.Controller.ConfigureBoardSize(req.Rows, req.Cols)
		respondCommand(w, sess, ok, "board size rejected")
	}
}

func handleSetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := intParams(r, "col")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid column")
			return
		}
		var req CategoryRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		ok := sess.Controller.SetCategoryName(p[0], req.Name)
		respondCommand(w, sess, ok, "category rejected")
	}
}

func handleSetCellContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := intParams(r, "row", "col")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cell position")
			return
		}
		var req CellContentRequest
		if err := readJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		ok := sess.Controller.SetQuestionAnswer(p[0], p[1], req.Question, req.Answer)
		respondCommand(w, sess, ok, "cell content rejected")
	}
}

func handleGetCell() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := intParams(r, "row", "col")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cell position")
			return
		}

		cell, ok := sessionFrom(r).Controller.Cell(p[0], p[1])
		if !ok {
			writeError(w, http.StatusNotFound, "cell not found")
			return
		}
		writeJSON(w, http.StatusOK, cell)
	}
}

func handleGetContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionFrom(r).Controller.Content())
	}
}
