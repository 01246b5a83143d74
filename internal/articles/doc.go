// Package articles reads markdown posts the way the blog theme sees them:
// frontmatter metadata, word count, reading time, and the related-articles
// list shown under each post.
package articles
