package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golf-scorecard/internal/course"
)

func ListCoursesHandler(store course.CourseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := store.GetAllCourses()
		if err != nil {
			writeError(w, err, "Failed to get courses")
			return
		}
		writeJSON(w, http.StatusOK, courses)
	}
}

func CreateCourseHandler(store course.CourseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCourseRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		c := &course.Course{Name: req.Name, Pars: req.Pars}
		if err := store.Save(c); err != nil {
			writeError(w, err, "Failed to save course")
			return
		}
		log.Info("Created course", "courseID", c.ID, "name", c.Name, "par", c.CountTotal)
		writeJSON(w, http.StatusCreated, c)
	}
}

func GetCourseHandler(store course.CourseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := store.Find(r.PathValue("id"))
		if err != nil {
			writeError(w, err, "Failed to get course")
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func DeleteCourseHandler(store course.CourseStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID := r.PathValue("id")
		if err := store.Delete(courseID); err != nil {
			writeError(w, err, "Failed to delete course")
			return
		}
		log.Info("Deleted course", "courseID", courseID)
		w.WriteHeader(http.StatusNoContent)
	}
}
