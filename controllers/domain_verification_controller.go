package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkbridge/linkbridgebackend/database"
	"github.com/linkbridge/linkbridgebackend/models"
	"github.com/linkbridge/linkbridgebackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GET /publisher/websites/:id/verification
// Returns the TXT record the publisher must add to the site's DNS.
func GetVerificationInstructions() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		col := database.OpenCollection("websites")
		var site models.Website
		if err := col.FindOne(c.Request.Context(), bson.M{"_id": id, "publisherId": uid}).Decode(&site); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "website not found"})
			return
		}

		if site.IsVerified {
			c.JSON(http.StatusOK, gin.H{"verified": true, "verifiedAt": site.VerifiedAt})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"verified":    false,
			"recordType":  "TXT",
			"recordName":  site.Domain,
			"recordValue": utils.VerificationRecord(site.VerificationToken),
		})
	}
}

// POST /publisher/websites/:id/verification
// Resolves the domain's TXT records and marks the site verified on a match.
func VerifyWebsiteDomain() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid website id"})
			return
		}

		uid, ok := authUserID(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("websites")
		var site models.Website
		if err := col.FindOne(ctx, bson.M{"_id": id, "publisherId": uid}).Decode(&site); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "website not found"})
			return
		}

		if site.IsVerified {
			c.JSON(http.StatusOK, gin.H{"verified": true, "verifiedAt": site.VerifiedAt})
			return
		}

		found, err := utils.CheckDomainTXT(ctx, site.Domain, site.VerificationToken)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "DNS lookup failed", "details": err.Error()})
			return
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "verification record not found", "code": "RECORD_NOT_FOUND"})
			return
		}

		now := time.Now().UTC()
		_, err = col.UpdateByID(ctx, site.ID, bson.M{
			"$set": bson.M{"isVerified": true, "verifiedAt": now, "updatedAt": now},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"verified": true, "verifiedAt": now})
	}
}
