package main

import (
	"strings"

	"github.com/tuannh982/go-collections/collections"
	"github.com/tuannh982/go-collections/records"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "go-collections"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	words := []string{"alpha", "beta", "ash", "bramble", "cedar", "beta"}

	// last write wins on duplicate words
	byWord := collections.ArrayToMapWith(words,
		func(w string) string { return w },
		func(w string) int { return len(w) },
	)
	logger.Info("indexed words ", byWord.Size())

	index := collections.NewStringMap[[]string]()
	for _, w := range words {
		collections.MultiMapAdd(index, w[:1], w)
	}
	index.ForEach(func(prefix string, group []string) {
		logger.Info("prefix ", prefix, " -> ", strings.Join(group, ","))
	})

	seen := collections.NewStringSet()
	for _, w := range words {
		seen.Add(w)
	}
	logger.Info("distinct words ", seen.Size())

	under := collections.GetOrUpdate(index, "d", func(string) []string { return nil })
	logger.Info("words under d ", len(under))

	rec := records.New[int]()
	rec.Set("10", 10)
	rec.Set("name", 1)
	rec.Set("2", 2)
	logger.Info("record fields in enumeration order ", strings.Join(rec.Keys(), ","))
}
