package pixclust_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/pixclust"
	"github.com/hupe1980/pixclust/codec"
	"github.com/hupe1980/pixclust/core"
)

func twoTone() *core.Buffer {
	buf := core.NewBuffer(8, 4)
	for i := 0; i < buf.Len(); i++ {
		c := core.RGB8{20, 40, 200}
		if i%8 >= 4 {
			c = core.RGB8{230, 210, 30}
		}
		buf.Set(i, c, 255)
	}
	return buf
}

// Example_kmeans demonstrates partitioning an image into k color clusters.
func Example_kmeans() {
	res, err := pixclust.ClusterKMeans(context.Background(), twoTone(), 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(res.Labels), len(res.Centroids), res.Labels[0] != res.Labels[4])
	// Output: 32 2 true
}

// Example_invalidParameter shows the error returned for out of range input.
func Example_invalidParameter() {
	_, err := pixclust.ClusterKMeans(context.Background(), twoTone(), 0)
	fmt.Println(err)
	// Output: invalid parameter: k=0
}

// Example_segment demonstrates a full segmentation with report and encoding.
func Example_segment() {
	s := pixclust.New(pixclust.WithSeed(1))

	seg, err := s.Segment(context.Background(), pixclust.Request{
		Buffer:    twoTone(),
		Algorithm: pixclust.DBSCAN,
		Params:    pixclust.DefaultParams(),
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range seg.Clusters {
		fmt.Println(c.ID, c.Size)
	}

	data, err := seg.Encode(codec.Default, codec.CompressionZSTD)
	if err != nil {
		log.Fatal(err)
	}
	back, err := pixclust.DecodeSegmentation(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(back.Report.NumSegments)
	// Output:
	// 0 16
	// 1 16
	// 2
}
