package dictionary_test

import (
	"os"
	"path"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backbone81/wal-fixtures/internal/dictionary"
)

var _ = Describe("Dictionary", func() {
	Context("WordList", func() {
		It("should reject an empty list", func() {
			Expect(dictionary.NewWordList(nil, 1)).Error().To(MatchError(dictionary.ErrDictionaryEmpty))
		})

		It("should reject empty words", func() {
			Expect(dictionary.NewWordList([]string{"a", ""}, 1)).Error().To(MatchError(dictionary.ErrWordEmpty))
		})

		It("should only return words from the list", func() {
			words := []string{"alpha", "beta", "gamma"}
			wordList, err := dictionary.NewWordList(words, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(wordList.Len()).To(Equal(3))
			for range 100 {
				Expect(words).To(ContainElement(wordList.RandomWord()))
			}
		})

		It("should choose every word with roughly the same probability", func() {
			words := []string{"alpha", "beta", "gamma", "delta"}
			wordList, err := dictionary.NewWordList(words, 42)
			Expect(err).ToNot(HaveOccurred())

			counts := make(map[string]int)
			for range 40000 {
				counts[wordList.RandomWord()]++
			}
			for _, word := range words {
				Expect(counts[word]).To(BeNumerically("~", 10000, 500), word)
			}
		})

		It("should repeat the same sequence for the same seed", func() {
			first, err := dictionary.NewWordList(dictionary.DefaultWords, 7)
			Expect(err).ToNot(HaveOccurred())
			second, err := dictionary.NewWordList(dictionary.DefaultWords, 7)
			Expect(err).ToNot(HaveOccurred())
			for range 100 {
				Expect(first.RandomWord()).To(Equal(second.RandomWord()))
			}
		})

		It("should not be affected by later changes to the input slice", func() {
			words := []string{"alpha"}
			wordList, err := dictionary.NewWordList(words, 1)
			Expect(err).ToNot(HaveOccurred())
			words[0] = "changed"
			Expect(wordList.RandomWord()).To(Equal("alpha"))
		})
	})

	Context("DefaultWords", func() {
		It("should be usable as a word list", func() {
			Expect(dictionary.NewWordList(dictionary.DefaultWords, 1)).Error().ToNot(HaveOccurred())
		})
	})

	Context("LoadDictionary", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		writeDictionary := func(content string) string {
			filePath := path.Join(dir, "words")
			Expect(os.WriteFile(filePath, []byte(content), 0o600)).To(Succeed())
			return filePath
		}

		DescribeTable("Loading supported formats",
			func(content string, wantWords []string) {
				Expect(dictionary.LoadDictionary(writeDictionary(content))).To(Equal(wantWords))
			},
			Entry("When using a JSON object", `{"zebra": 1, "apple": 1, "mango": 1}`, []string{"apple", "mango", "zebra"}),
			Entry("When using a JSON array", `["zebra", "apple", "apple"]`, []string{"apple", "zebra"}),
			Entry("When using plain text", "zebra\n\napple\r\n  mango  \n", []string{"apple", "mango", "zebra"}),
			Entry("When using plain text with leading whitespace", "\n\nword\n", []string{"word"}),
		)

		It("should fail for a missing file", func() {
			Expect(dictionary.LoadDictionary(path.Join(dir, "missing"))).Error().To(HaveOccurred())
		})

		It("should fail for malformed JSON", func() {
			Expect(dictionary.LoadDictionary(writeDictionary(`{"apple": `))).Error().To(HaveOccurred())
		})

		It("should fail for a dictionary without words", func() {
			Expect(dictionary.LoadDictionary(writeDictionary("{}"))).Error().To(MatchError(dictionary.ErrDictionaryEmpty))
			Expect(dictionary.LoadDictionary(writeDictionary(" \n "))).Error().To(MatchError(dictionary.ErrDictionaryEmpty))
		})
	})
})
