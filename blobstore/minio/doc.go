// Package minio provides a blobstore.Store for MinIO and other
// S3-compatible object storage (Ceph, Garage, SeaweedFS).
//
// It uses the official MinIO Go client, which keeps deployments
// air-gap friendly: no AWS dependencies are required.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "vxgo/")
package minio
