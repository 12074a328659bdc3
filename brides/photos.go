package brides

import (
	"context"
	"log"
	"net/http"

	"github.com/Roei786/Bridal-salon-sub000/db"
	"github.com/Roei786/Bridal-salon-sub000/filemgr"
	"github.com/Roei786/Bridal-salon-sub000/models"
	"github.com/Roei786/Bridal-salon-sub000/mq"
	"github.com/Roei786/Bridal-salon-sub000/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadBridePhoto stores a dress/fitting photo for a bride and records the
// file names on the bride document.
func UploadBridePhoto(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Error parsing form data")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Photo upload failed")
		return
	}

	origName, thumbName, err := filemgr.SaveImageWithThumb(file, header, filemgr.EntityBride, 300)
	if err != nil {
		log.Printf("Save photo for bride %s failed: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	res, err := db.BridesCollection.UpdateOne(r.Context(),
		bson.M{"brideId": id},
		bson.M{"$push": bson.M{"images": origName, "thumbnails": thumbName}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record photo")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Bride not found")
		return
	}

	logHistory(r.Context(), id, "photo-uploaded", origName, utils.GetUserIDFromRequest(r))
	go mq.Emit(context.Background(), "bride-photo-uploaded", models.Index{
		EntityType: "bride", EntityId: id, Method: "POST", ItemId: origName, ItemType: "photo",
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"image":     origName,
		"thumbnail": thumbName,
	})
}
